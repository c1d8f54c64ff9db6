package notification

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector 텍스트 변환 시 줄바꿈으로 구분할 블록 요소
const blockSelector = "br, p, div, li, h1, h2, h3, h4, h5, h6, tr"

// htmlToText 메일 HTML 본문에서 보이는 텍스트만 추출하여 TextPart 를 만듭니다.
// 블록 요소는 줄 단위로 나누고, 줄 안의 연속 공백은 하나로 합칩니다.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style").Remove()
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
		s.BeforeHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
