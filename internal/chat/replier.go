package chat

// Replier turns a user input into the assistant's answer. Implementations
// must be synchronous and must not fail.
type Replier interface {
	Reply(input string) Reply
}

const (
	templateBody = "접도율은 건축물의 대지가 도로에 접한 길이의 비율을 의미하며, 재건축 시 중요한 검토 사항 중 하나입니다. " +
		"건축법상 접도율 기준을 충족해야 건축허가를 받을 수 있습니다."
	templateSummary = "접도율은 대지가 도로에 접한 길이의 비율로, 재건축 허가의 필수 검토사항입니다."
)

var templateLinks = []string{"관련 법령 보기", "유사 판례 검색"}

// TemplateReplier echoes the input into a canned explanation. Every reply
// carries the same fact, summary and links regardless of the input.
type TemplateReplier struct{}

func (TemplateReplier) Reply(input string) Reply {
	return Reply{
		Text:    TemplateText(input),
		Summary: templateSummary,
		Links:   append([]string(nil), templateLinks...),
	}
}

// TemplateText is the fixed reply template.
func TemplateText(input string) string {
	return `"` + input + `"에 대해 답변드리겠습니다. ` + templateBody
}
