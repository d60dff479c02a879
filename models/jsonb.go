package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Section structs are persisted as independent jsonb columns on the
// applicant record, so each carries its own Valuer/Scanner pair.

func jsonbValue(v interface{}) (driver.Value, error) {
	valueString, err := json.Marshal(v)
	return string(valueString), err
}

func jsonbScan(dst interface{}, value interface{}) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	case nil:
		return nil
	}
	return errors.Errorf("unsupported jsonb source type %T", value)
}

func (d PersonalData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *PersonalData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d FamilyData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *FamilyData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d EducationData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *EducationData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d SkillsData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *SkillsData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d TrainingData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *TrainingData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d HealthData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *HealthData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d StatementData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *StatementData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d ExperienceData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *ExperienceData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d ReferralData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *ReferralData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (d ParentsData) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *ParentsData) Scan(value interface{}) error {
	return jsonbScan(d, value)
}

func (l EmergencyContactList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *EmergencyContactList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}

func (p PdfPayload) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *PdfPayload) Scan(value interface{}) error {
	return jsonbScan(p, value)
}
