package layout

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyg/atelier/internal/project"
)

func newProject(t *testing.T, folders ...string) *project.ProjectConfig {
	t.Helper()
	cfg := project.New()
	cfg.RootDirectory = t.TempDir()
	for _, f := range folders {
		cfg.AddFolder(f)
	}
	return cfg
}

func listing(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.Mkdir(filepath.Join(root, n), 0755))
	}
}

func TestCreateAll(t *testing.T) {
	cfg := newProject(t, "Blender", "Textures")

	created, err := CreateAll(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blender", "Textures"}, created)
	assert.Equal(t, []string{"Blender", "Textures"}, listing(t, cfg.RootDirectory))
}

func TestCreateAll_InvalidRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	for _, root := range []string{"", filepath.Join(dir, "missing"), file} {
		cfg := project.New()
		cfg.RootDirectory = root
		cfg.AddFolder("Blender")

		created, err := CreateAll(cfg)
		assert.ErrorIs(t, err, project.ErrInvalidRoot, root)
		assert.Empty(t, created)
	}
}

func TestCreateAll_SecondCallAbortsOnFirstEntry(t *testing.T) {
	cfg := newProject(t, "Blender", "Textures", "Renders")

	_, err := CreateAll(cfg)
	require.NoError(t, err)

	created, err := CreateAll(cfg)
	var exists *project.FolderExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "Blender", exists.Name)
	assert.Empty(t, created)
}

func TestCreateAll_AbortKeepsEarlierFolders(t *testing.T) {
	cfg := newProject(t, "Blender", "Textures", "Renders")
	mkdirs(t, cfg.RootDirectory, "Textures")

	created, err := CreateAll(cfg)
	var exists *project.FolderExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "Textures", exists.Name)
	assert.Equal(t, []string{"Blender"}, created)

	// Renders was never reached.
	assert.Equal(t, []string{"Blender", "Textures"}, listing(t, cfg.RootDirectory))
}

func TestCreateAll_DuplicateNamesCollide(t *testing.T) {
	cfg := newProject(t, "Geo", "Geo")

	created, err := CreateAll(cfg)
	var exists *project.FolderExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "Geo", exists.Name)
	assert.Equal(t, []string{"Geo"}, created)
}

func TestCreateAll_InvalidNameTouchesNothing(t *testing.T) {
	cfg := newProject(t, "Blender", "../outside")

	_, err := CreateAll(cfg)
	var invalid *project.InvalidFolderNameError
	require.True(t, errors.As(err, &invalid))
	assert.Empty(t, listing(t, cfg.RootDirectory))
}

func TestPlanSync(t *testing.T) {
	cfg := newProject(t, "D", "C", "B")
	mkdirs(t, cfg.RootDirectory, "A", "B", "C")

	plan, err := PlanSync(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, cfg.RootDirectory, plan.Root)
	assert.Equal(t, []string{"D"}, plan.Create)
	assert.Equal(t, []string{"A"}, plan.Delete)
	assert.True(t, plan.Destructive())
	assert.False(t, plan.Empty())
}

func TestPlanSync_SortsAndDedupes(t *testing.T) {
	cfg := newProject(t, "zeta", "alpha", "alpha", "mid")

	plan, err := PlanSync(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, plan.Create)
	assert.Empty(t, plan.Delete)
}

func TestReconcile_RoundTrip(t *testing.T) {
	cfg := newProject(t, "B", "C", "D")
	mkdirs(t, cfg.RootDirectory, "A", "B", "C")
	marker := filepath.Join(cfg.RootDirectory, "B", "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("untouched"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RootDirectory, "A", "nested.txt"), nil, 0644))

	res, err := Reconcile(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, res.Created)
	assert.Equal(t, []string{"A"}, res.Deleted)
	assert.Equal(t, []string{"B", "C", "D"}, listing(t, cfg.RootDirectory))

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "untouched", string(data))
}

func TestReconcile_Idempotent(t *testing.T) {
	cfg := newProject(t, "Blender", "Renders")
	mkdirs(t, cfg.RootDirectory, "Old")

	_, err := Reconcile(cfg, SyncOptions{})
	require.NoError(t, err)
	before := listing(t, cfg.RootDirectory)

	plan, err := PlanSync(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.True(t, plan.Empty())

	res, err := Reconcile(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Empty(t, res.Deleted)
	assert.Equal(t, before, listing(t, cfg.RootDirectory))
}

func TestReconcile_DeletesFilesByDefault(t *testing.T) {
	cfg := newProject(t, "Blender")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RootDirectory, "notes.txt"), nil, 0644))

	res, err := Reconcile(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, res.Deleted)
	assert.Equal(t, []string{"Blender"}, listing(t, cfg.RootDirectory))
}

func TestReconcile_DirectoriesOnlyKeepsFiles(t *testing.T) {
	cfg := newProject(t, "Blender")
	mkdirs(t, cfg.RootDirectory, "Stale")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RootDirectory, "notes.txt"), nil, 0644))

	res, err := Reconcile(cfg, SyncOptions{DirectoriesOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Stale"}, res.Deleted)
	assert.Equal(t, []string{"Blender", "notes.txt"}, listing(t, cfg.RootDirectory))
}

func TestReconcile_InvalidRoot(t *testing.T) {
	cfg := project.New()
	cfg.RootDirectory = filepath.Join(t.TempDir(), "missing")
	cfg.AddFolder("Blender")

	_, err := Reconcile(cfg, SyncOptions{})
	assert.ErrorIs(t, err, project.ErrInvalidRoot)
}

func TestApply_HaltsOnFirstFailure(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "exists")

	plan := Plan{Root: root, Create: []string{"a", "exists", "z"}, Delete: []string{"exists"}}
	res, err := Apply(plan)

	var fsErr *project.FilesystemError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "mkdir", fsErr.Op)
	assert.Equal(t, filepath.Join(root, "exists"), fsErr.Path)
	assert.Equal(t, []string{"a"}, res.Created)
	assert.Empty(t, res.Deleted)
	assert.Equal(t, []string{"a", "exists"}, listing(t, root))
}

func TestEndToEnd(t *testing.T) {
	cfg := newProject(t, "Blender", "Textures")

	_, err := CreateAll(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blender", "Textures"}, listing(t, cfg.RootDirectory))

	_, err = cfg.RemoveFolder(1)
	require.NoError(t, err)
	cfg.AddFolder("Renders")

	_, err = Reconcile(cfg, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Blender", "Renders"}, listing(t, cfg.RootDirectory))
}

func TestSnapshotAndExists(t *testing.T) {
	cfg := newProject(t, "Blender")
	mkdirs(t, cfg.RootDirectory, "Blender")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RootDirectory, "a.txt"), nil, 0644))

	entries, err := Snapshot(cfg)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "Blender", IsDir: true}, {Name: "a.txt", IsDir: false}}, entries)

	assert.True(t, Exists(cfg, "Blender"))
	assert.False(t, Exists(cfg, "Renders"))
}
