package layout

import (
	"os"
	"sort"

	"github.com/kennyg/atelier/internal/project"
)

// SyncOptions tunes how the root directory is compared with the folder list.
type SyncOptions struct {
	// DirectoriesOnly leaves non-directory entries in the root alone.
	DirectoriesOnly bool
}

// Plan is the set of changes that makes the root match the folder list.
// Both slices are sorted lexicographically.
type Plan struct {
	Root   string   `json:"root"`
	Create []string `json:"create"`
	Delete []string `json:"delete"`
}

// Empty reports whether the plan has nothing to do.
func (p Plan) Empty() bool {
	return len(p.Create) == 0 && len(p.Delete) == 0
}

// Destructive reports whether applying the plan removes anything.
func (p Plan) Destructive() bool {
	return len(p.Delete) > 0
}

// Result records the operations Apply completed.
type Result struct {
	Created []string `json:"created"`
	Deleted []string `json:"deleted"`
}

// PlanSync diffs the folder list against the root's immediate children.
func PlanSync(cfg *project.ProjectConfig, sopts SyncOptions) (Plan, error) {
	if err := cfg.CheckRoot(); err != nil {
		return Plan{}, err
	}

	names := cfg.Names()
	if err := validateNames(names); err != nil {
		return Plan{}, err
	}

	desired := make(map[string]struct{}, len(names))
	for _, n := range names {
		desired[n] = struct{}{}
	}

	children, err := listChildren(cfg.RootDirectory, sopts.DirectoriesOnly)
	if err != nil {
		return Plan{}, err
	}
	actual := make(map[string]struct{}, len(children))
	for _, n := range children {
		actual[n] = struct{}{}
	}

	// With DirectoriesOnly a file named like a wanted folder is not in
	// actual, so Apply's mkdir fails on it instead of replacing it.
	plan := Plan{Root: cfg.RootDirectory}
	for n := range desired {
		if _, ok := actual[n]; !ok {
			plan.Create = append(plan.Create, n)
		}
	}
	for n := range actual {
		if _, ok := desired[n]; !ok {
			plan.Delete = append(plan.Delete, n)
		}
	}

	sort.Strings(plan.Create)
	sort.Strings(plan.Delete)
	return plan, nil
}

// Apply performs the plan: the create pass first, then the delete pass.
// The first failure stops the call; Result holds what completed before it.
func Apply(plan Plan, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	cfg := &project.ProjectConfig{RootDirectory: plan.Root}

	var res Result
	for _, name := range plan.Create {
		path := cfg.FolderPath(name)
		if err := os.Mkdir(path, 0755); err != nil {
			return res, &project.FilesystemError{Op: "mkdir", Path: path, Err: err}
		}
		o.logger.Debug("created folder", "path", path)
		res.Created = append(res.Created, name)
	}

	for _, name := range plan.Delete {
		path := cfg.FolderPath(name)
		if err := os.RemoveAll(path); err != nil {
			return res, &project.FilesystemError{Op: "remove", Path: path, Err: err}
		}
		o.logger.Debug("removed entry", "path", path)
		res.Deleted = append(res.Deleted, name)
	}

	return res, nil
}

// Reconcile plans and applies in one step, without confirmation.
func Reconcile(cfg *project.ProjectConfig, sopts SyncOptions, opts ...Option) (Result, error) {
	plan, err := PlanSync(cfg, sopts)
	if err != nil {
		return Result{}, err
	}
	return Apply(plan, opts...)
}
