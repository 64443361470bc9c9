package installer

import (
	"testing"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/testutil"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	created  []string
	sections []string
	items    []types.ItemResult
}

func (r *recordingReporter) TargetCreated(target string)         { r.created = append(r.created, target) }
func (r *recordingReporter) SectionStarted(title string)         { r.sections = append(r.sections, title) }
func (r *recordingReporter) ItemInstalled(item types.ItemResult) { r.items = append(r.items, item) }

func newInstaller(t *testing.T, env *testutil.TestEnvironment, reporter Reporter) *Installer {
	t.Helper()
	inst, err := New(Options{
		Catalog:     env.Catalog,
		PackageRoot: env.PackageRoot,
		Target:      env.Target,
		FileSystem:  env.FS,
		Reporter:    reporter,
	})
	require.NoError(t, err)
	return inst
}

func TestNewValidatesOptions(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := New(Options{PackageRoot: env.PackageRoot, Target: env.Target})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))

	_, err = New(Options{Catalog: env.Catalog, Target: env.Target})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRunIntoEmptyTarget(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WritePackage()
	reporter := &recordingReporter{}

	result, err := newInstaller(t, env, reporter).Run(nil)
	require.NoError(t, err)

	assert.True(t, result.CreatedTarget)
	assert.Equal(t, []string{env.Target}, reporter.created)
	assert.Equal(t, []string{"Installing Core Governance..."}, reporter.sections)

	require.Len(t, result.Core.Items, 2)
	dirItem, fileItem := result.Core.Items[0], result.Core.Items[1]
	assert.Equal(t, types.DirCreated, dirItem.Mode)
	assert.Equal(t, types.MergeStats{Added: len(testutil.CoreFiles)}, dirItem.Stats)
	assert.Equal(t, types.OutcomeCopied, fileItem.Outcome)
	assert.Equal(t, types.BundleApplied, result.Core.State)

	// The target holds exactly the core bundle.
	want := map[string]string{"GOVERNANCE-MATRIX.md": testutil.CoreFileContent}
	for rel, content := range testutil.CoreFiles {
		want["ai-governance/"+rel] = content
	}
	if diff := cmp.Diff(want, testutil.ReadTree(t, env.FS, env.Target)); diff != "" {
		t.Errorf("target tree mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, result.Adapters)
	assert.Equal(t, env.Catalog.AdapterIDs(), result.NotInstalled)
}

func TestRunTwiceAddsNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WritePackage()
	selected := []string{"cursor", "claude"}

	_, err := newInstaller(t, env, nil).Run(selected)
	require.NoError(t, err)
	before := testutil.ReadTree(t, env.FS, env.Target)

	result, err := newInstaller(t, env, nil).Run(selected)
	require.NoError(t, err)

	assert.False(t, result.CreatedTarget)
	assert.Equal(t, types.BundleSkipped, result.Core.State)
	assert.Equal(t, types.DirMerged, result.Core.Items[0].Mode)
	assert.Equal(t, types.MergeStats{Skipped: len(testutil.CoreFiles)}, result.Core.Items[0].Stats)
	assert.Equal(t, types.OutcomeUnchanged, result.Core.Items[1].Outcome)

	assert.Empty(t, result.NewlyInstalled)
	assert.Equal(t, selected, result.AlreadyPresent)
	assert.Equal(t, []string{"windsurf", "copilot", "aider"}, result.NotInstalled)

	if diff := cmp.Diff(before, testutil.ReadTree(t, env.FS, env.Target)); diff != "" {
		t.Errorf("re-run changed the target (-before +after):\n%s", diff)
	}
}

func TestRunKeepsCustomizedFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WritePackage()

	_, err := newInstaller(t, env, nil).Run(nil)
	require.NoError(t, err)

	testutil.WriteFiles(t, env.FS, env.Target, map[string]string{
		"GOVERNANCE-MATRIX.md":                  "our own matrix",
		"ai-governance/policies/002-secrets.md": "our own secrets policy",
	})
	require.NoError(t, env.FS.Remove(env.TargetPath("ai-governance/kpis/targets.md")))

	result, err := newInstaller(t, env, nil).Run(nil)
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeKeptExisting, result.Core.Items[1].Outcome)
	assert.Equal(t, types.MergeStats{Added: 1, Skipped: len(testutil.CoreFiles) - 1}, result.Core.Items[0].Stats)
	assert.Equal(t, types.BundleApplied, result.Core.State)

	tree := testutil.ReadTree(t, env.FS, env.Target)
	assert.Equal(t, "our own matrix", tree["GOVERNANCE-MATRIX.md"])
	assert.Equal(t, "our own secrets policy", tree["ai-governance/policies/002-secrets.md"])
	assert.Equal(t, testutil.CoreFiles["kpis/targets.md"], tree["ai-governance/kpis/targets.md"])
}

func TestRunIsAdditiveOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WritePackage()

	// Pre-existing content at every path the package would write.
	existing := map[string]string{}
	for rel := range testutil.ReadTree(t, env.FS, env.PackageRoot) {
		existing[rel] = "pre-existing " + rel
	}
	existing["unrelated/notes.txt"] = "not ours"
	testutil.WriteFiles(t, env.FS, env.Target, existing)

	result, err := newInstaller(t, env, nil).Run(env.Catalog.AdapterIDs())
	require.NoError(t, err)

	if diff := cmp.Diff(existing, testutil.ReadTree(t, env.FS, env.Target)); diff != "" {
		t.Errorf("installation modified existing content (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.BundleSkipped, result.Core.State)
	assert.Empty(t, result.NewlyInstalled)
	assert.Equal(t, env.Catalog.AdapterIDs(), result.AlreadyPresent)
}

func TestRunInstallsSelectedAdapters(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WritePackage()
	reporter := &recordingReporter{}

	result, err := newInstaller(t, env, reporter).Run([]string{"aider", "windsurf"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Installing Core Governance...", "Installing Adapters..."}, reporter.sections)

	require.Len(t, result.Adapters, 2)
	windsurf := result.Adapters[0]
	assert.Equal(t, "windsurf", windsurf.ID)
	assert.Equal(t, types.BundleApplied, windsurf.State)
	require.Len(t, windsurf.Items, 2)
	assert.Equal(t, types.ItemFile, windsurf.Items[0].Kind)
	assert.Equal(t, types.OutcomeCopied, windsurf.Items[0].Outcome)
	assert.Equal(t, types.DirCreated, windsurf.Items[1].Mode)
	assert.Equal(t, 2, windsurf.Items[1].Stats.Added)

	assert.Equal(t, []string{"windsurf", "aider"}, result.NewlyInstalled)
	assert.Equal(t, []string{"cursor", "copilot", "claude"}, result.NotInstalled)

	tree := testutil.ReadTree(t, env.FS, env.Target)
	assert.Equal(t, "windsurf rules\n", tree[".windsurfrules"])
	assert.Equal(t, "aider governance\n", tree[".aider/rules/governance.md"])
	assert.NotContains(t, tree, "CLAUDE.md")

	// core dir + core file + windsurf file + windsurf dir + aider dir
	assert.Len(t, reporter.items, 5)
}

func TestRunMergesIntoPartialAdapter(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WritePackage()
	testutil.WriteFiles(t, env.FS, env.Target, map[string]string{
		".cursor/rules/governance.md": "tuned rules",
	})

	result, err := newInstaller(t, env, nil).Run([]string{"cursor"})
	require.NoError(t, err)

	cursor := result.Adapters[0]
	assert.Equal(t, types.OutcomeCopied, cursor.Items[0].Outcome)
	assert.Equal(t, types.DirMerged, cursor.Items[1].Mode)
	assert.Equal(t, types.MergeStats{Added: 1, Skipped: 1}, cursor.Items[1].Stats)
	assert.Equal(t, "tuned rules", testutil.ReadTree(t, env.FS, env.Target)[".cursor/rules/governance.md"])
}

func TestRunReportsMissingSources(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WritePackage()
	require.NoError(t, env.FS.Remove(env.PackageRoot+"/CLAUDE.md"))
	require.NoError(t, env.FS.RemoveAll(env.PackageRoot+"/.aider"))
	require.NoError(t, env.FS.Remove(env.PackageRoot+"/GOVERNANCE-MATRIX.md"))

	result, err := newInstaller(t, env, nil).Run([]string{"claude", "aider", "copilot"})
	require.NoError(t, err, "missing sources must not abort the run")

	assert.Equal(t, types.OutcomeSourceMissing, result.Core.Items[1].Outcome)
	assert.Equal(t, types.BundleApplied, result.Core.State)

	require.Len(t, result.Adapters, 3)
	assert.Equal(t, types.OutcomeSourceMissing, result.Adapters[1].Items[0].Outcome)
	assert.Equal(t, types.DirSourceMissing, result.Adapters[2].Items[0].Mode)
	assert.Equal(t, []string{"copilot"}, result.NewlyInstalled)
	assert.Equal(t, []string{"claude", "aider"}, result.AlreadyPresent)

	tree := testutil.ReadTree(t, env.FS, env.Target)
	assert.NotContains(t, tree, "CLAUDE.md")
	assert.NotContains(t, tree, "GOVERNANCE-MATRIX.md")
	_, statErr := env.FS.Stat(env.TargetPath(".aider"))
	assert.Error(t, statErr, "missing source dir must not create the destination")
}

func TestRunErrors(t *testing.T) {
	t.Run("unknown_adapter", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WritePackage()

		_, err := newInstaller(t, env, nil).Run([]string{"vscode"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAdapterUnknown))

		_, statErr := env.FS.Stat(env.Target)
		assert.Error(t, statErr, "nothing is written before selection is validated")
	})

	t.Run("target_is_a_file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WritePackage()
		require.NoError(t, env.FS.WriteFile(env.Target, []byte("x"), 0644))

		_, err := newInstaller(t, env, nil).Run(nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("install_adapter_unknown", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		_, err := newInstaller(t, env, nil).InstallAdapter("nope")
		assert.True(t, errors.IsErrorCode(err, errors.ErrAdapterUnknown))
	})
}
