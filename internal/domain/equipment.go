package domain

type EquipmentKind string

const (
	KindBody EquipmentKind = "BODY"
	KindLens EquipmentKind = "LENS"
)

type SensorFormat string

const (
	FormatFullFrame SensorFormat = "FF"
	FormatCrop      SensorFormat = "CROP"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentUnavailable EquipmentStatus = "UNAVAILABLE"
)

// EquipmentItem is one catalog entry. Model is the natural key: the club
// tracks single physical units, so two items never share a model name.
type EquipmentItem struct {
	Model    string          `json:"model"`
	Kind     EquipmentKind   `json:"kind"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Format   SensorFormat    `json:"format"`
	Status   EquipmentStatus `json:"status"`
}

func (e *EquipmentItem) IsAvailable() bool {
	return e.Status == EquipmentAvailable
}
