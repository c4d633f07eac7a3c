package models

// PipelineStage is one ordered column of the board.
// Order defines the left-to-right column sequence and is unique across stages.
type PipelineStage struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Order int    `json:"order" gorm:"column:stage_order;uniqueIndex;not null"`

	Leads []Lead `json:"leads,omitempty" gorm:"foreignKey:StageID"`
}

// TableName returns the table name for PipelineStage
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}
