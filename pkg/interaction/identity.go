package interaction

// IdentityMap assigns contiguous vertex ids, starting at 0 and gap-free,
// to developer logins in first-seen order. The builder relies on ids being
// dense so the graph can be sized to exactly the developer count.
type IdentityMap struct {
	ids    map[string]int
	logins []string
}

// NewIdentityMap returns an empty identity map.
func NewIdentityMap() *IdentityMap {
	return &IdentityMap{ids: make(map[string]int)}
}

// Add registers a login if unseen and returns its vertex id.
func (m *IdentityMap) Add(login string) int {
	if id, ok := m.ids[login]; ok {
		return id
	}
	id := len(m.logins)
	m.ids[login] = id
	m.logins = append(m.logins, login)
	return id
}

// ID returns the vertex id for a login.
func (m *IdentityMap) ID(login string) (int, bool) {
	id, ok := m.ids[login]
	return id, ok
}

// Login returns the login for a vertex id, or "" when out of range.
func (m *IdentityMap) Login(id int) string {
	if id < 0 || id >= len(m.logins) {
		return ""
	}
	return m.logins[id]
}

// Len returns the number of registered identities.
func (m *IdentityMap) Len() int {
	return len(m.logins)
}

// Labels returns the logins indexed by vertex id.
func (m *IdentityMap) Labels() []string {
	out := make([]string, len(m.logins))
	copy(out, m.logins)
	return out
}

// CollectIdentities builds an identity map covering every source and target
// in the record list, in first-seen order.
func CollectIdentities(records []Interaction) *IdentityMap {
	m := NewIdentityMap()
	for _, r := range records {
		m.Add(r.Source)
		m.Add(r.Target)
	}
	return m
}
