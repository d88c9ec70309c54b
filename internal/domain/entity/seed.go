package entity

import "time"

// seedDate fecha fija del movimiento inicial para que el seed sea determinista.
var seedDate = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// Seed devuelve el dataset inicial usado cuando el almacenamiento no tiene snapshot.
func Seed() AppData {
	return AppData{
		Users: []User{
			{ID: RootUserID, Name: "Super Administrateur", Login: "orse", Pass: "1234", Role: RoleAdmin},
			{ID: "2", Name: "Magasinier Kaolack", Login: "moussa", Pass: "1234", Role: RoleUser},
		},
		Warehouses: []Warehouse{
			{
				ID: "w1", Name: "Entrepôt Central Diamniadio", Region: "Dakar", Manager: "Moussa Diop",
				Lat: 14.74, Lng: -17.20,
				Stock: map[string]int64{NormalizeCrop("Maïs"): 5000, "Riz": 12000},
			},
			{
				ID: "w2", Name: "Base Kaolack Sud", Region: "Kaolack", Manager: "Abdou Fall",
				Lat: 14.15, Lng: -16.07,
				Stock: map[string]int64{"Arachide": 25000, NormalizeCrop("Maïs"): 8000},
			},
		},
		Movements: []Movement{
			{
				ID: "m1", Date: seedDate, Type: MovementTypeInbound, WarehouseID: "w1",
				Crop: NormalizeCrop("Maïs"), Bags: 100, Weight: 5000,
				Status: MovementStatusValidated, CreatedBy: "Super Administrateur",
			},
		},
	}
}
