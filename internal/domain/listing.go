package domain

// DepartmentFiles groups the files classified under one key.
type DepartmentFiles struct {
	Department string          `json:"dept"`
	Files      []SubmittedFile `json:"files"`
}

// Listing maps grouping keys to files, remembering first-encounter order.
type Listing struct {
	groups []DepartmentFiles
	index  map[string]int
}

// Add appends f to the group for key, creating the group if needed.
func (l *Listing) Add(key string, f SubmittedFile) {
	if l.index == nil {
		l.index = map[string]int{}
	}
	i, ok := l.index[key]
	if !ok {
		i = len(l.groups)
		l.index[key] = i
		l.groups = append(l.groups, DepartmentFiles{Department: key})
	}
	l.groups[i].Files = append(l.groups[i].Files, f)
}

// Groups returns the groups in first-encounter order, never nil.
func (l *Listing) Groups() []DepartmentFiles {
	if l == nil || len(l.groups) == 0 {
		return []DepartmentFiles{}
	}
	return l.groups
}

// Files returns the files grouped under key.
func (l *Listing) Files(key string) []SubmittedFile {
	if l == nil {
		return nil
	}
	if i, ok := l.index[key]; ok {
		return l.groups[i].Files
	}
	return nil
}

// Len is the number of groups.
func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.groups)
}
