package types

// IssueType categorizes a fact flagged by the consistency checker.
type IssueType string

// Issue type constants for consistency check findings
const (
	// IssueInventedEmployer flags an employer name not present in the source resume
	IssueInventedEmployer IssueType = "invented_employer"
	// IssueInventedDate flags a date token not present in the source resume
	IssueInventedDate IssueType = "invented_date"
	// IssueInventedSkill flags a technology skill not supported by the source resume
	IssueInventedSkill IssueType = "invented_skill"
)

// ConsistencyIssue is a single fact in generated text that does not appear
// in the source resume.
type ConsistencyIssue struct {
	Type   IssueType `json:"type"`
	Value  string    `json:"value"`
	Detail string    `json:"detail,omitempty"`
}

// ConsistencyReport is the result of checking generated text against a
// source resume. Passed is true iff Issues is empty. The report is transient;
// persistence is the caller's responsibility.
type ConsistencyReport struct {
	Passed bool               `json:"passed"`
	Issues []ConsistencyIssue `json:"issues"`
}

// NewConsistencyReport builds a report from the collected issues.
func NewConsistencyReport(issues []ConsistencyIssue) *ConsistencyReport {
	if issues == nil {
		issues = []ConsistencyIssue{}
	}
	return &ConsistencyReport{
		Passed: len(issues) == 0,
		Issues: issues,
	}
}
