package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Musasteel/ai-pc-assistant/internal/products"
)

type fakeResolver struct {
	listings map[string]products.Listing
	calls    []string
}

func (f *fakeResolver) Resolve(_ context.Context, name string) products.Listing {
	f.calls = append(f.calls, name)
	if l, ok := f.listings[name]; ok {
		return l
	}
	return products.Listing{
		Name:  name,
		URL:   "https://www.amazon.com/s?k=" + name + "&tag=test-20",
		Price: products.PriceFallback,
	}
}

func TestAssemble_NoMarkersAppendsOnlyInvitation(t *testing.T) {
	resolver := &fakeResolver{}
	a := NewAssembler(resolver)

	raw := "A 650W power supply is plenty for that build."
	reply, links := a.Assemble(context.Background(), raw)

	assert.Equal(t, raw+"\n\n"+followUpInvitation, reply)
	assert.Empty(t, links)
	assert.Empty(t, resolver.calls, "no resolution without markers")
}

func TestAssemble_ExistingInvitationLeftAlone(t *testing.T) {
	a := NewAssembler(&fakeResolver{})

	raw := "Go with 32GB. Let me know if you want RAM timings explained."
	reply, links := a.Assemble(context.Background(), raw)

	assert.Equal(t, raw, reply, "reply with a follow-up indicator must pass through byte-identical")
	assert.Empty(t, links)
}

func TestAssemble_SplicesListingsAndLinkBlock(t *testing.T) {
	resolver := &fakeResolver{listings: map[string]products.Listing{
		"RTX 4070": {Name: "RTX 4070", URL: "https://www.amazon.com/dp/B0BZB7SQ38?tag=test-20", Price: "$549.99"},
	}}
	a := NewAssembler(resolver)

	raw := "For 1440p, the [[RTX 4070]] is the sweet spot. The [[RTX 4070]] also runs cool."
	reply, links := a.Assemble(context.Background(), raw)

	assert.NotContains(t, reply, "[[")
	assert.NotContains(t, reply, "]]")
	assert.Contains(t, reply, "RTX 4070 ($549.99) is the sweet spot")
	assert.Contains(t, reply, "RTX 4070 ($549.99) also runs cool")
	assert.Contains(t, reply, "\n\nProduct Links:\n")
	assert.Contains(t, reply, followUpInvitation)

	assert.Equal(t, []string{"• RTX 4070: $549.99 - [View on Amazon](https://www.amazon.com/dp/B0BZB7SQ38?tag=test-20)"}, links)
	assert.Equal(t, []string{"RTX 4070"}, resolver.calls, "duplicate mentions resolve once")
}

func TestAssemble_LinksInFirstOccurrenceOrder(t *testing.T) {
	a := NewAssembler(&fakeResolver{})

	raw := "Pair the [[Ryzen 7 7800X3D]] with an [[RTX 4070]] and [[32GB DDR5]]."
	_, links := a.Assemble(context.Background(), raw)

	assert.Len(t, links, 3)
	assert.Contains(t, links[0], "Ryzen 7 7800X3D")
	assert.Contains(t, links[1], "RTX 4070")
	assert.Contains(t, links[2], "32GB DDR5")
}
