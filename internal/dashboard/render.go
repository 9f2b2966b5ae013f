package dashboard

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"interndash/internal"
	"interndash/internal/pipeline"
	"interndash/internal/util"
)

type card struct {
	internal.ListingRecord
	DeadlineText    string
	StartDateText   string
	DescriptionHTML template.HTML
}

type pageData struct {
	Total      int
	Cards      []card
	Industries []string
	Roles      []string
	WorkStyles []string
	Selected   selection
	Source     string
}

type selection struct {
	Industry  string
	Role      string
	WorkStyle string
	Sort      string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>インターンシップ 説明ダッシュボード</title>
<style>
body { background: #f0f2f6; font-family: sans-serif; margin: 0; padding: 24px; }
h1 { color: #2c3e50; }
.count { margin-bottom: 16px; }
form.filters { margin-bottom: 20px; }
form.filters select { margin-right: 12px; padding: 4px; }
.cards { display: grid; grid-template-columns: repeat(3, 1fr); gap: 20px; }
.card { background: white; padding: 20px; border-radius: 10px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); min-height: 250px; }
.card h3 { color: #2c3e50; margin-top: 0; }
.card .company { font-weight: bold; color: #3498db; }
.card .tag { margin-left: 10px; color: #7f8c8d; }
.card p { margin: 5px 0; }
.card details summary { font-weight: bold; color: #3498db; cursor: pointer; padding: 5px 0; }
.card details div.detail { margin-top: 10px; padding: 10px; background: #f8f9fa; border-radius: 5px; }
</style>
</head>
<body>
<h1>📄 インターンシップ 説明ダッシュボード</h1>
{{if eq .Total 0}}
<p>説明データが存在しません。</p>
{{else}}
<p class="count"><strong>{{.Total}}件</strong> のインターン説明が見つかりました。</p>
{{end}}
<form class="filters" method="get" action="/">
<select name="industry">
<option value="">業界: すべて</option>
{{range .Industries}}<option value="{{.}}"{{if eq . $.Selected.Industry}} selected{{end}}>{{.}}</option>{{end}}
</select>
<select name="role">
<option value="">職種: すべて</option>
{{range .Roles}}<option value="{{.}}"{{if eq . $.Selected.Role}} selected{{end}}>{{.}}</option>{{end}}
</select>
<select name="workStyle">
<option value="">勤務形態: すべて</option>
{{range .WorkStyles}}<option value="{{.}}"{{if eq . $.Selected.WorkStyle}} selected{{end}}>{{.}}</option>{{end}}
</select>
<select name="sort">
<option value="">掲載順</option>
<option value="deadline"{{if eq .Selected.Sort "deadline"}} selected{{end}}>締切が近い順</option>
</select>
<button type="submit">絞り込む</button>
</form>
<div class="cards">
{{range .Cards}}
<div class="card">
<h3>{{.Title}}</h3>
<div>
<span class="company">{{.Company}}</span>
<span class="tag">{{.Industry}}</span>
<span class="tag">{{.WorkStyle}}</span>
</div>
<p><strong>勤務地:</strong> {{.Location}}</p>
<p><strong>最寄り駅:</strong> {{.Station}}</p>
<p><strong>期間:</strong> {{.Period}}</p>
<p><strong>職種:</strong> {{.Role}}</p>
<p><strong>報酬:</strong> {{.Salary}}</p>
<p><strong>交通費:</strong> {{.CommuteAllowance}}</p>
<p><strong>勤務時間:</strong> {{.AvailableHours}}</p>
<p><strong>勤務日数:</strong> {{.WorkDays}}</p>
<p><strong>選考フロー:</strong> {{.SelectionFlow}}</p>
<p><strong>応募締切:</strong> {{.DeadlineText}}</p>
<p><strong>開始予定日:</strong> {{.StartDateText}}</p>
<details>
<summary>詳細情報を見る</summary>
<div class="detail">
<p><strong>必須スキル:</strong> {{.RequiredSkills}}</p>
<p><strong>歓迎スキル:</strong> {{.PreferredSkills}}</p>
{{.DescriptionHTML}}
</div>
</details>
</div>
{{end}}
</div>
{{if .Source}}<p class="count">入力元: {{.Source}}</p>{{end}}
</body>
</html>
`))

// RenderPage builds the full dashboard page for the given listings.
func RenderPage(records []internal.ListingRecord, allRecords []internal.ListingRecord, sel selection, sourceNote string) ([]byte, error) {
	data := pageData{
		Total:      len(records),
		Cards:      make([]card, 0, len(records)),
		Industries: pipeline.FilterOptions(allRecords, internal.FieldIndustry),
		Roles:      pipeline.FilterOptions(allRecords, internal.FieldRole),
		WorkStyles: pipeline.FilterOptions(allRecords, internal.FieldWorkStyle),
		Selected:   sel,
		Source:     sourceNote,
	}
	for _, rec := range records {
		data.Cards = append(data.Cards, makeCard(rec))
	}

	buf := bytes.NewBuffer(nil)
	if err := pageTemplate.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func makeCard(rec internal.ListingRecord) card {
	return card{
		ListingRecord:   rec,
		DeadlineText:    dateText(rec.Deadline),
		StartDateText:   dateText(rec.StartDate),
		DescriptionHTML: renderDescription(rec.Description),
	}
}

func dateText(d internal.Date) string {
	if !d.Valid {
		return internal.Unknown
	}
	return d.String()
}

// renderDescription converts the Markdown description to HTML. goldmark
// escapes embedded raw HTML by default, so sheet content cannot inject
// markup into the page.
func renderDescription(text string) template.HTML {
	if util.IsBlank(text) || text == internal.Unknown {
		return template.HTML("<i>説明なし</i>")
	}
	buf := bytes.NewBuffer(nil)
	if err := goldmark.Convert([]byte(text), buf); err != nil {
		escaped := template.HTMLEscapeString(text)
		return template.HTML("<p>" + escaped + "</p>")
	}
	return template.HTML(buf.String())
}
