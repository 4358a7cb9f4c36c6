package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticProvider struct {
	name  string
	value string
}

func (p staticProvider) Name() string { return p.name }

func (p staticProvider) Fields(courseID string) map[string]interface{} {
	return map[string]interface{}{"value": p.value, "course": courseID}
}

func TestRegisterIdempotent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(staticProvider{name: "alpha", value: "first"})
	Register(staticProvider{name: "alpha", value: "second"})

	providers := Providers()
	assert.Len(t, providers, 1)

	// The first registration stays; re-registering the same name is a no-op.
	fields := providers[0].Fields("course-v1:Acme+101+2026")
	assert.Equal(t, "first", fields["value"])
}

func TestProvidersStableOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(staticProvider{name: "zulu"})
	Register(staticProvider{name: "alpha"})
	Register(staticProvider{name: "mike"})

	var names []string
	for _, provider := range Providers() {
		names = append(names, provider.Name())
	}
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, names)
}

func TestMergeFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(staticProvider{name: "alpha", value: "a"})
	Register(staticProvider{name: "beta", value: "b"})

	merged := MergeFields("course-v1:Acme+101+2026")
	assert.Len(t, merged, 2)

	alpha, ok := merged["alpha"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "a", alpha["value"])
	assert.Equal(t, "course-v1:Acme+101+2026", alpha["course"])
}
