package pipeline

import (
	"strings"

	"interndash/internal"
)

// CanonicalFields is the fixed output schema, in sheet order. It never
// changes at runtime; every materialized record exposes all of these.
var CanonicalFields = []internal.Field{
	internal.FieldTitle,
	internal.FieldCompany,
	internal.FieldIndustry,
	internal.FieldWorkStyle,
	internal.FieldLocation,
	internal.FieldStation,
	internal.FieldPeriod,
	internal.FieldRole,
	internal.FieldRequiredSkills,
	internal.FieldSalary,
	internal.FieldCommuteAllowance,
	internal.FieldAvailableHours,
	internal.FieldWorkDays,
	internal.FieldWorkHours,
	internal.FieldSelectionFlow,
	internal.FieldDeadline,
	internal.FieldStartDate,
	internal.FieldHeadcount,
	internal.FieldPreferredSkills,
	internal.FieldPreferredSkills2,
	internal.FieldDescription,
}

// headerAliases maps every header label observed across sheet revisions to
// its canonical field. Each canonical label maps to itself, so a sheet that
// already uses the canonical header passes through untouched. Lookup is
// case-sensitive and exact after trimming surrounding whitespace.
var headerAliases = map[string]internal.Field{
	"インターン名":  internal.FieldTitle,
	"インターン名称": internal.FieldTitle,
	"タイトル":    internal.FieldTitle,
	"企業名":     internal.FieldCompany,
	"会社名":     internal.FieldCompany,
	"企業":      internal.FieldCompany,
	"業界":      internal.FieldIndustry,
	"業種":      internal.FieldIndustry,
	"形式":      internal.FieldWorkStyle,
	"形態":      internal.FieldWorkStyle,
	"勤務形態":    internal.FieldWorkStyle,
	"勤務地":     internal.FieldLocation,
	"勤務場所":    internal.FieldLocation,
	"場所":      internal.FieldLocation,
	"最寄り駅":    internal.FieldStation,
	"最寄駅":     internal.FieldStation,
	"期間":      internal.FieldPeriod,
	"実施期間":    internal.FieldPeriod,
	"職種":      internal.FieldRole,
	"募集職種":    internal.FieldRole,
	"ポジション":   internal.FieldRole,
	"必須スキル":   internal.FieldRequiredSkills,
	"必要スキル":   internal.FieldRequiredSkills,
	"報酬":      internal.FieldSalary,
	"給与":      internal.FieldSalary,
	"時給":      internal.FieldSalary,
	"交通費":     internal.FieldCommuteAllowance,
	"交通費支給":   internal.FieldCommuteAllowance,
	"勤務可能時間":  internal.FieldAvailableHours,
	"勤務日数":    internal.FieldWorkDays,
	"勤務時間":    internal.FieldWorkHours,
	"選考フロー":   internal.FieldSelectionFlow,
	"選考プロセス":  internal.FieldSelectionFlow,
	"選考":      internal.FieldSelectionFlow,
	"応募締切":    internal.FieldDeadline,
	"応募期限":    internal.FieldDeadline,
	"締切":      internal.FieldDeadline,
	"エントリー締切": internal.FieldDeadline,
	"開始予定日":   internal.FieldStartDate,
	"開始日":     internal.FieldStartDate,
	"勤務開始日":   internal.FieldStartDate,
	"募集人数":    internal.FieldHeadcount,
	"採用人数":    internal.FieldHeadcount,
	"人数":      internal.FieldHeadcount,
	"歓迎スキル":   internal.FieldPreferredSkills,
	"歓迎スキル2":  internal.FieldPreferredSkills2,
	"歓迎スキル２":  internal.FieldPreferredSkills2,
	"説明":      internal.FieldDescription,
	"説明文":     internal.FieldDescription,
	"詳細":      internal.FieldDescription,
	"備考":      internal.FieldDescription,
}

// CanonicalField resolves an observed header label to its canonical field.
func CanonicalField(label string) (internal.Field, bool) {
	field, ok := headerAliases[strings.TrimSpace(label)]
	return field, ok
}
