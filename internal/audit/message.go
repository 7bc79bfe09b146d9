package audit

// ExtractMessage pulls a short result message out of a response body. For
// structured bodies it prefers "message", then "detail", then the message of
// the first element under "results"; a key that is present wins even when
// its value is empty. Anything that is not valid JSON is returned as raw
// text; list and scalar bodies carry no message.
func ExtractMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	body, err := ParseBody(raw)
	if err != nil {
		return string(raw)
	}
	if body.Kind() != BodyMapping {
		return ""
	}

	if value, ok := body.Field("message"); ok {
		if message, ok := value.(string); ok {
			return message
		}
	}
	if value, ok := body.Field("detail"); ok {
		if detail, ok := value.(string); ok {
			return detail
		}
	}
	if results, ok := body.Field("results"); ok {
		if list, ok := results.([]any); ok && len(list) > 0 {
			if first, ok := list[0].(map[string]any); ok {
				if message, ok := first["message"].(string); ok {
					return message
				}
			}
		}
	}
	return ""
}
