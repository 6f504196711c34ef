package models

import "happyhomes/src/types"

type Facility struct {
	ID   uint               `gorm:"primarykey" json:"id"`
	Kind types.FacilityKind `gorm:"size:50;index;not null" json:"kind"`
}

func (f *Facility) Label() string {
	if label, ok := types.FacilityLabels[f.Kind]; ok {
		return label
	}
	return string(f.Kind)
}

func (f *Facility) Response() types.FacilityResponse {
	return types.FacilityResponse{
		ID:    f.ID,
		Kind:  f.Kind,
		Label: f.Label(),
	}
}
