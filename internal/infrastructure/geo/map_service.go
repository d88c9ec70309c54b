package geo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

// MapService proyecta los almacenes sobre el mapa. Solo lectura.
type MapService struct {
	store ports.SnapshotStore
}

func NewMapService(store ports.SnapshotStore) *MapService {
	return &MapService{store: store}
}

// Markers un marcador por almacén, ordenados por nombre.
func (s *MapService) Markers() ([]dto.MapMarkerDTO, error) {
	d, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	return BuildMarkers(d.Warehouses), nil
}

// KML documento con un Placemark por almacén.
func (s *MapService) KML() ([]byte, error) {
	d, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	return BuildKML(d.Warehouses)
}

func BuildMarkers(warehouses []entity.Warehouse) []dto.MapMarkerDTO {
	out := make([]dto.MapMarkerDTO, 0, len(warehouses))
	for i := range warehouses {
		w := &warehouses[i]
		out = append(out, dto.MapMarkerDTO{
			ID:      w.ID,
			Name:    w.Name,
			Region:  w.Region,
			Manager: w.Manager,
			Lat:     w.Lat,
			Lng:     w.Lng,
			TotalKg: w.TotalKg(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// BuildKML serializa los almacenes como KML 2.2 (coordenadas lng,lat,0).
func BuildKML(warehouses []entity.Warehouse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	kml := doc.CreateElement("kml")
	kml.CreateAttr("xmlns", kmlNamespace)
	folder := kml.CreateElement("Document")
	folder.CreateElement("name").SetText("Entrepôts ORSRE")

	for _, m := range BuildMarkers(warehouses) {
		pm := folder.CreateElement("Placemark")
		pm.CreateAttr("id", m.ID)
		pm.CreateElement("name").SetText(m.Name)
		pm.CreateElement("description").SetText(describe(warehouses, m))

		ext := pm.CreateElement("ExtendedData")
		addData(ext, "region", m.Region)
		addData(ext, "manager", m.Manager)
		addData(ext, "total_kg", strconv.FormatInt(m.TotalKg, 10))

		pt := pm.CreateElement("Point")
		pt.CreateElement("coordinates").SetText(coordinates(m.Lat, m.Lng))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("geo: serializar KML: %w", err)
	}
	return out, nil
}

func addData(parent *etree.Element, name, value string) {
	d := parent.CreateElement("Data")
	d.CreateAttr("name", name)
	d.CreateElement("value").SetText(value)
}

func coordinates(lat, lng float64) string {
	return strconv.FormatFloat(lng, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64) + ",0"
}

// describe texto libre: región, responsable y stock por cultivo.
func describe(warehouses []entity.Warehouse, m dto.MapMarkerDTO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Région: %s\nResponsable: %s\nStock total: %d kg", m.Region, m.Manager, m.TotalKg)
	for i := range warehouses {
		if warehouses[i].ID != m.ID {
			continue
		}
		crops := make([]string, 0, len(warehouses[i].Stock))
		for c := range warehouses[i].Stock {
			crops = append(crops, c)
		}
		sort.Strings(crops)
		for _, c := range crops {
			fmt.Fprintf(&b, "\n%s: %d kg", c, warehouses[i].Stock[c])
		}
	}
	return b.String()
}
