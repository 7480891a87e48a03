package platform

import "strings"

// Commit types for data file history.
const (
	CommitTypeAdd    = "add"
	CommitTypeEdit   = "edit"
	CommitTypeDelete = "delete"
	CommitTypeImport = "import"
	CommitTypeChore  = "chore"
)

// FormatCommitMessage builds a conventional commit message:
//
//	<type>(<scope>): <subject>
//
//	<body>
func FormatCommitMessage(ctype, scope, subject, body string) string {
	var sb strings.Builder

	if ctype == "" {
		ctype = CommitTypeChore
	}
	sb.WriteString(ctype)

	if scope != "" {
		sb.WriteString("(")
		sb.WriteString(scope)
		sb.WriteString(")")
	}

	sb.WriteString(": ")
	sb.WriteString(subject)

	if body = strings.TrimSpace(body); body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(body)
	}

	return sb.String()
}
