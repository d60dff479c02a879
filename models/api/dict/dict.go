package dictapimodels

import "github.com/pkg/errors"

type JobPositionData struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	IsActive   bool   `json:"is_active"`
}

func (d JobPositionData) Validate() error {
	if d.Name == "" {
		return errors.New("ไม่ได้ระบุชื่อตำแหน่งงาน")
	}
	return nil
}

type JobPositionView struct {
	JobPositionData
	ID string `json:"id"`
}

type InterviewQuestionData struct {
	Question  string `json:"question"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

func (d InterviewQuestionData) Validate() error {
	if d.Question == "" {
		return errors.New("ไม่ได้ระบุคำถาม")
	}
	return nil
}

type InterviewQuestionView struct {
	InterviewQuestionData
	ID string `json:"id"`
}

type SettingData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (d SettingData) Validate() error {
	if d.Key == "" {
		return errors.New("ไม่ได้ระบุคีย์การตั้งค่า")
	}
	return nil
}
