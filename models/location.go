package models

// District and Upazila are read-only address lookups used by profile forms.
type District struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	BnName string `bson:"bn_name,omitempty" json:"bn_name,omitempty"`
}

type Upazila struct {
	ID         string `bson:"id" json:"id"`
	DistrictID string `bson:"district_id" json:"district_id"`
	Name       string `bson:"name" json:"name"`
	BnName     string `bson:"bn_name,omitempty" json:"bn_name,omitempty"`
}
