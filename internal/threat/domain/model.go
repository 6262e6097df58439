package domain

// STRIDE categories. The mitigation catalog and the graph coloring key off
// these exact values; anything else is tolerated but gets no mitigations.
const (
	CategorySpoofing              = "Spoofing"
	CategoryTampering             = "Tampering"
	CategoryRepudiation           = "Repudiation"
	CategoryInformationDisclosure = "Information Disclosure"
	CategoryDenialOfService       = "Denial of Service"
	CategoryElevationOfPrivilege  = "Elevation of Privilege"
)

// Threat is a single STRIDE finding. Mitigations stay empty until the
// catalog pass runs; the classifier and the LLM never fill them.
type Threat struct {
	Category       string   `json:"categoria"`
	Title          string   `json:"titulo"`
	Description    string   `json:"descricao"`
	AffectedAssets []string `json:"ativos_afetados"`
	Mitigations    []string `json:"mitigacoes"`
}

// Clone returns a copy that shares no slices with the receiver.
func (t Threat) Clone() Threat {
	out := t
	if t.AffectedAssets != nil {
		out.AffectedAssets = append([]string(nil), t.AffectedAssets...)
	}
	if t.Mitigations != nil {
		out.Mitigations = append([]string(nil), t.Mitigations...)
	}
	return out
}

// Assessment is what a classification pass (LLM or heuristic) produces
// before mitigation attachment and graph building.
type Assessment struct {
	Threats      []Threat `json:"ameacas"`
	Observations string   `json:"observacoes"`
}
