package internal

import "time"

// Unknown is stored in every canonical field whose source cell is blank or
// whose column is absent from the sheet, so consumers never need existence
// checks.
const Unknown = "不明"

// Field is a canonical column label of the listing sheet. Records are
// addressed by field name, never by column position.
type Field string

const (
	FieldTitle            Field = "インターン名"
	FieldCompany          Field = "企業名"
	FieldIndustry         Field = "業界"
	FieldWorkStyle        Field = "形式"
	FieldLocation         Field = "勤務地"
	FieldStation          Field = "最寄り駅"
	FieldPeriod           Field = "期間"
	FieldRole             Field = "職種"
	FieldRequiredSkills   Field = "必須スキル"
	FieldSalary           Field = "報酬"
	FieldCommuteAllowance Field = "交通費"
	FieldAvailableHours   Field = "勤務可能時間"
	FieldWorkDays         Field = "勤務日数"
	FieldWorkHours        Field = "勤務時間"
	FieldSelectionFlow    Field = "選考フロー"
	FieldDeadline         Field = "応募締切"
	FieldStartDate        Field = "開始予定日"
	FieldHeadcount        Field = "募集人数"
	FieldPreferredSkills  Field = "歓迎スキル"
	FieldPreferredSkills2 Field = "歓迎スキル2"
	FieldDescription      Field = "説明"
)

// RawGrid is the unparsed sheet content: ordered rows of ordered text cells.
// The first row is conventionally a header but may be absent. Rows may be
// shorter than the header when trailing empty cells were omitted upstream.
type RawGrid [][]string

// NormalizedRow holds one data row keyed by canonical field. Every canonical
// field is present; fields whose column was missing hold Unknown.
type NormalizedRow map[Field]string

type NormalizedGrid []NormalizedRow

// Date is a calendar date parsed from a sheet cell. Valid is false when the
// cell was empty or could not be parsed; that is a per-field condition, not
// an error.
type Date struct {
	Time  time.Time
	Valid bool
}

func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// ListingRecord is one normalized internship listing. It is created fresh on
// every pipeline run and never mutated afterwards.
type ListingRecord struct {
	Title            string `json:"title"`
	Company          string `json:"company"`
	Industry         string `json:"industry"`
	WorkStyle        string `json:"workStyle"`
	Location         string `json:"location"`
	Station          string `json:"station"`
	Period           string `json:"period"`
	Role             string `json:"role"`
	RequiredSkills   string `json:"requiredSkills"`
	Salary           string `json:"salary"`
	CommuteAllowance string `json:"commuteAllowance"`
	AvailableHours   string `json:"availableHours"`
	WorkDays         string `json:"workDays"`
	WorkHours        string `json:"workHours"`
	SelectionFlow    string `json:"selectionFlow"`
	Deadline         Date   `json:"deadline"`
	StartDate        Date   `json:"startDate"`
	Headcount        string `json:"headcount"`
	PreferredSkills  string `json:"preferredSkills"`
	PreferredSkills2 string `json:"preferredSkills2"`
	Description      string `json:"description"`
}

// FieldValue returns the record value for a canonical field. Date fields
// come back in ISO form, or empty when unparseable.
func (r ListingRecord) FieldValue(f Field) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldCompany:
		return r.Company
	case FieldIndustry:
		return r.Industry
	case FieldWorkStyle:
		return r.WorkStyle
	case FieldLocation:
		return r.Location
	case FieldStation:
		return r.Station
	case FieldPeriod:
		return r.Period
	case FieldRole:
		return r.Role
	case FieldRequiredSkills:
		return r.RequiredSkills
	case FieldSalary:
		return r.Salary
	case FieldCommuteAllowance:
		return r.CommuteAllowance
	case FieldAvailableHours:
		return r.AvailableHours
	case FieldWorkDays:
		return r.WorkDays
	case FieldWorkHours:
		return r.WorkHours
	case FieldSelectionFlow:
		return r.SelectionFlow
	case FieldDeadline:
		return r.Deadline.String()
	case FieldStartDate:
		return r.StartDate.String()
	case FieldHeadcount:
		return r.Headcount
	case FieldPreferredSkills:
		return r.PreferredSkills
	case FieldPreferredSkills2:
		return r.PreferredSkills2
	case FieldDescription:
		return r.Description
	}
	return ""
}
