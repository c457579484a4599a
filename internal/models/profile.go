package models

// UserProfile holds optional biometrics. There are no identity
// semantics; the store is single-user by construction.
type UserProfile struct {
	Age      int     `json:"age,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
	WeightKg float64 `json:"weight_kg,omitempty"`
}
