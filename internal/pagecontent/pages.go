package pagecontent

// PageDefinition describes an editable portal page surfaced in the admin
// content manager.
type PageDefinition struct {
	ID   string
	Name string
	Icon string
}

// DefaultPages lists the portal pages whose hero content is editable.
func DefaultPages() []PageDefinition {
	return []PageDefinition{
		{ID: "homepage", Name: "Homepage", Icon: "Home"},
		{ID: "research", Name: "Research Portal", Icon: "FlaskConical"},
		{ID: "ocean-intelligence", Name: "Ocean Intelligence", Icon: "Waves"},
		{ID: "emergency", Name: "Emergency Response", Icon: "AlertTriangle"},
		{ID: "learning", Name: "Learning Academy", Icon: "GraduationCap"},
		{ID: "regional-impact-network", Name: "Regional Impact Network", Icon: "Globe"},
		{ID: "maritime", Name: "Maritime Services", Icon: "Ship"},
		{ID: "knowledge", Name: "Knowledge Center", Icon: "BookOpen"},
		{ID: "partnership", Name: "Partnership Gateway", Icon: "Handshake"},
		{ID: "news-updates-center", Name: "News & Updates Center", Icon: "Newspaper"},
		{ID: "integration-systems-platform", Name: "Integration Systems Platform", Icon: "CircuitBoard"},
	}
}
