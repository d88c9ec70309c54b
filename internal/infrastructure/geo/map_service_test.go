package geo

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

func sample() []entity.Warehouse {
	return []entity.Warehouse{
		{ID: "w2", Name: "Thiès", Region: "Thiès", Manager: "Awa", Lat: 14.79, Lng: -16.93, Stock: map[string]int64{"Mil": 500}},
		{ID: "w1", Name: "Dakar Port", Region: "Dakar", Manager: "Moussa", Lat: 14.6937, Lng: -17.4441, Stock: map[string]int64{"Riz": 1000, "Arachide": 250}},
	}
}

func TestBuildMarkers(t *testing.T) {
	markers := BuildMarkers(sample())

	require.Len(t, markers, 2)
	assert.Equal(t, "Dakar Port", markers[0].Name)
	assert.Equal(t, int64(1250), markers[0].TotalKg)
	assert.Equal(t, -17.4441, markers[0].Lng)
	assert.Equal(t, "Thiès", markers[1].Name)
}

func TestBuildMarkers_Empty(t *testing.T) {
	markers := BuildMarkers(nil)
	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}

func TestBuildKML(t *testing.T) {
	raw, err := BuildKML(sample())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))

	root := doc.SelectElement("kml")
	require.NotNil(t, root)
	assert.Equal(t, kmlNamespace, root.SelectAttrValue("xmlns", ""))

	placemarks := root.FindElements("./Document/Placemark")
	require.Len(t, placemarks, 2)

	first := placemarks[0]
	assert.Equal(t, "w1", first.SelectAttrValue("id", ""))
	assert.Equal(t, "Dakar Port", first.SelectElement("name").Text())
	assert.Equal(t, "-17.4441,14.6937,0", first.FindElement("./Point/coordinates").Text())
	assert.Equal(t, "1250", first.FindElement("./ExtendedData/Data[@name='total_kg']/value").Text())
	assert.Contains(t, first.SelectElement("description").Text(), "Arachide: 250 kg")
}
