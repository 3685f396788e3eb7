package products

import "regexp"

// mentionPattern matches the [[Product Name]] marker syntax the model is
// instructed to emit. Non-greedy, so adjacent markers don't merge.
var mentionPattern = regexp.MustCompile(`\[\[(.+?)\]\]`)

// ExtractMentions returns the inner text of every marker, deduplicated,
// in first-occurrence order.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		mentions = append(mentions, name)
	}
	return mentions
}
