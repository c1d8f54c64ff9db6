package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/darkkaiser/discount-bot/internal/service/discount"
)

var announcementTemplate = template.Must(template.New("announcement").Parse(`
<h2>🎉 New Discount Available!</h2>
<p>We're offering <strong>{{.Percent}}%</strong> off on <strong>{{.Product}}</strong>!</p>
<p>🗓️ <strong>Valid From:</strong> {{.StartDate}} <br>
   🗓️ <strong>To:</strong> {{.EndDate}}</p>
{{- if .Code}}
<p>💸 Use discount code: <strong>{{.Code}}</strong> at checkout!</p>
{{- else}}
<p>💸 This discount will be automatically applied at checkout.</p>
{{- end}}
{{- if .Collection}}
<p>🧺 Applies only to collection: <strong>{{.Collection}}</strong></p>
{{- end}}
<br/>
<p>Enjoy,</p>
<p>Your Store Team</p>
`))

type announcementData struct {
	Percent    string
	Product    string
	StartDate  string
	EndDate    string
	Code       string
	Collection string
}

// Announcement 할인 안내 메일의 제목과 HTML 본문
type Announcement struct {
	Subject string
	HTML    string
}

// BuildAnnouncement 할인 요청과 생성 결과로 안내 메일을 만듭니다.
//
// 할인 코드 안내는 코드형일 때만, 컬렉션 안내는 할인 규칙이 실제로 컬렉션에 한정되었을 때만 포함합니다.
// 본문에 들어가는 값은 모두 HTML 이스케이프됩니다.
func BuildAnnouncement(intent *discount.DiscountIntent, record *discount.DiscountRecord) (Announcement, error) {
	data := announcementData{
		Percent:   intent.DiscountPercent.String(),
		Product:   intent.ProductLabel,
		StartDate: intent.StartDate.String(),
		EndDate:   intent.EndDate.String(),
	}
	if record.Type == discount.TypeCode {
		data.Code = record.Code
	}
	if record.Scoped() {
		data.Collection = intent.CollectionName
	}

	var buf bytes.Buffer
	if err := announcementTemplate.Execute(&buf, data); err != nil {
		return Announcement{}, err
	}

	return Announcement{
		Subject: fmt.Sprintf("%s%% OFF on %s – Limited Time Only!", data.Percent, intent.ProductLabel),
		HTML:    buf.String(),
	}, nil
}
