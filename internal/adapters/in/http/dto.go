package http

import "time"

// Request and response bodies described by openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ClientLocation struct {
	ClientID int64    `json:"client_id"`
	Location Location `json:"location"`
}

type NearestParcelLocker struct {
	ID         int64    `json:"id"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}

type NearestParcelLockers struct {
	ParcelLockers []NearestParcelLocker `json:"parcel_lockers"`
}

type SendPackageRequest struct {
	SenderID    int64   `json:"sender_id"`
	ReceiverID  int64   `json:"receiver_id"`
	MaxDistance float64 `json:"max_distance"`
	Size        string  `json:"size"`
}

type SentPackage struct {
	ID             int64     `json:"id"`
	ParcelLockerID int64     `json:"parcel_locker_id"`
	CompartmentID  int64     `json:"compartment_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type SendPackageResponse struct {
	Package SentPackage `json:"package"`
}

type ReceivedPackage struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	DeliveredAt time.Time `json:"delivered_at"`
}

type ReceivePackageResponse struct {
	Package ReceivedPackage `json:"package"`
}

type AddParcelLockerRequest struct {
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type AddParcelLockerResponse struct {
	NewParcelLockerID int64 `json:"new_parcel_locker_id"`
}

type AddCompartmentRequest struct {
	Size string `json:"size"`
}

type AddCompartmentResponse struct {
	NewCompartmentID int64 `json:"new_compartment_id"`
}
