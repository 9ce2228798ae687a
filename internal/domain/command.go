package domain

// Command is the subcommand selected on the command line.
//
// The set is closed: only types in this package implement it. Dispatch goes
// through Accept so that every leaf variant needs a CommandVisitor method.
type Command interface {
	Accept(v CommandVisitor) error
	String() string
	command()
}

// CommandVisitor has one method per leaf command. Adding a variant adds a
// method here, which breaks every visitor until it handles the new case.
type CommandVisitor interface {
	VisitPreview(c Preview) error
	VisitQuery(c Query) error
	VisitBest(c Best) error
	VisitSearch(c Search) error
	VisitWidget(c Widget) error
	VisitFn(c Fn) error
	VisitRepoAdd(c RepoAdd) error
	VisitRepoBrowse(c RepoBrowse) error
	VisitAlfredStart(c AlfredStart) error
	VisitAlfredSuggestions(c AlfredSuggestions) error
	VisitAlfredCheck(c AlfredCheck) error
	VisitAlfredTransform(c AlfredTransform) error
}

// Preview renders the preview pane for a finder line.
type Preview struct {
	Line string
}

// Query opens the finder pre-filtered with Query.
type Query struct {
	Query string
}

// Best runs the snippet that best matches Query without prompting.
// Args fill the snippet variables in order.
type Best struct {
	Query string
	Args  []string
}

// Search looks Query up in online cheatsheets.
type Search struct {
	Query string
}

// Widget prints the shell widget for Shell.
type Widget struct {
	Shell string
}

// Fn calls a named helper function.
type Fn struct {
	Func string
	Args []string
}

// Repo groups the repository subcommands.
type Repo struct {
	Cmd RepoCommand
}

// Alfred groups the Alfred workflow subcommands.
type Alfred struct {
	Cmd AlfredCommand
}

func (Preview) command() {}
func (Query) command()   {}
func (Best) command()    {}
func (Search) command()  {}
func (Widget) command()  {}
func (Fn) command()      {}
func (Repo) command()    {}
func (Alfred) command()  {}

func (c Preview) Accept(v CommandVisitor) error { return v.VisitPreview(c) }
func (c Query) Accept(v CommandVisitor) error   { return v.VisitQuery(c) }
func (c Best) Accept(v CommandVisitor) error    { return v.VisitBest(c) }
func (c Search) Accept(v CommandVisitor) error  { return v.VisitSearch(c) }
func (c Widget) Accept(v CommandVisitor) error  { return v.VisitWidget(c) }
func (c Fn) Accept(v CommandVisitor) error      { return v.VisitFn(c) }
func (c Repo) Accept(v CommandVisitor) error    { return c.Cmd.acceptRepo(v) }
func (c Alfred) Accept(v CommandVisitor) error  { return c.Cmd.acceptAlfred(v) }

func (Preview) String() string  { return "preview" }
func (Query) String() string    { return "query" }
func (Best) String() string     { return "best" }
func (Search) String() string   { return "search" }
func (Widget) String() string   { return "widget" }
func (Fn) String() string       { return "fn" }
func (c Repo) String() string   { return "repo " + c.Cmd.String() }
func (c Alfred) String() string { return "alfred " + c.Cmd.String() }

// RepoCommand is the closed set of repo subcommands.
type RepoCommand interface {
	String() string
	acceptRepo(v CommandVisitor) error
}

// RepoAdd imports the cheatsheets found at URI.
type RepoAdd struct {
	URI string
}

// RepoBrowse lists featured cheatsheet repositories.
type RepoBrowse struct{}

func (c RepoAdd) acceptRepo(v CommandVisitor) error    { return v.VisitRepoAdd(c) }
func (c RepoBrowse) acceptRepo(v CommandVisitor) error { return v.VisitRepoBrowse(c) }

func (RepoAdd) String() string    { return "add" }
func (RepoBrowse) String() string { return "browse" }

// AlfredCommand is the closed set of Alfred subcommands.
type AlfredCommand interface {
	String() string
	acceptAlfred(v CommandVisitor) error
}

type (
	AlfredStart       struct{}
	AlfredSuggestions struct{}
	AlfredCheck       struct{}
	AlfredTransform   struct{}
)

func (c AlfredStart) acceptAlfred(v CommandVisitor) error       { return v.VisitAlfredStart(c) }
func (c AlfredSuggestions) acceptAlfred(v CommandVisitor) error { return v.VisitAlfredSuggestions(c) }
func (c AlfredCheck) acceptAlfred(v CommandVisitor) error       { return v.VisitAlfredCheck(c) }
func (c AlfredTransform) acceptAlfred(v CommandVisitor) error   { return v.VisitAlfredTransform(c) }

func (AlfredStart) String() string       { return "start" }
func (AlfredSuggestions) String() string { return "suggestions" }
func (AlfredCheck) String() string       { return "check" }
func (AlfredTransform) String() string   { return "transform" }

// VariantKind selects how the core flow seeds the finder.
type VariantKind int

const (
	// VariantKindCore browses every cheat.
	VariantKindCore VariantKind = iota
	// VariantKindFilter picks the best match for a query.
	VariantKindFilter
	// VariantKindQuery opens the finder with a query typed in.
	VariantKindQuery
)

// Variant is the core flow mode plus its query, if any.
type Variant struct {
	kind  VariantKind
	query string
}

// VariantCore browses every cheat with an empty finder query.
func VariantCore() Variant {
	return Variant{kind: VariantKindCore}
}

// VariantFilter selects the best match for query without asking.
func VariantFilter(query string) Variant {
	return Variant{kind: VariantKindFilter, query: query}
}

// VariantQuery opens the finder with query already typed in.
func VariantQuery(query string) Variant {
	return Variant{kind: VariantKindQuery, query: query}
}

func (v Variant) Kind() VariantKind { return v.kind }
func (v Variant) Query() string     { return v.query }
