package dbmodels

type JobPosition struct {
	BaseModel
	Name       string `gorm:"type:varchar(255)" json:"name"`
	Department string `gorm:"type:varchar(255)" json:"department"`
	IsActive   bool   `json:"is_active"`
}

type InterviewQuestion struct {
	BaseModel
	Question  string `gorm:"type:varchar(1000)" json:"question"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

type SystemSetting struct {
	BaseModel
	Key   string `gorm:"type:varchar(255);uniqueIndex" json:"key"`
	Value string `gorm:"type:varchar(1000)" json:"value"`
}
