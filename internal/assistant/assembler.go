package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/Musasteel/ai-pc-assistant/internal/products"
)

// ProductResolver resolves a mentioned product name to a listing.
type ProductResolver interface {
	Resolve(ctx context.Context, name string) products.Listing
}

// Assembler splices resolved listings into a raw model reply.
type Assembler struct {
	resolver ProductResolver
}

func NewAssembler(resolver ProductResolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// Assemble replaces every [[name]] marker with "name (price)", collects a
// markdown link line per product, appends the link block, and makes sure
// the reply ends with a follow-up invitation.
func (a *Assembler) Assemble(ctx context.Context, raw string) (string, []string) {
	mentions := products.ExtractMentions(raw)
	if len(mentions) == 0 {
		return ensureFollowUp(raw), nil
	}

	reply := raw
	links := make([]string, 0, len(mentions))
	for _, name := range mentions {
		listing := a.resolver.Resolve(ctx, name)
		links = append(links, fmt.Sprintf("• %s: %s - [View on Amazon](%s)", name, listing.Price, listing.URL))
		reply = strings.ReplaceAll(reply, "[["+name+"]]", fmt.Sprintf("%s (%s)", name, listing.Price))
	}

	reply += "\n\nProduct Links:\n" + strings.Join(links, "\n")

	return ensureFollowUp(reply), links
}

func ensureFollowUp(reply string) string {
	lower := strings.ToLower(reply)
	for _, phrase := range followUpIndicators {
		if strings.Contains(lower, phrase) {
			return reply
		}
	}
	return reply + "\n\n" + followUpInvitation
}
