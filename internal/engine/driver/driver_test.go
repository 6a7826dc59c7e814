package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clank/internal/adapters/logger"
	"go.trai.ch/clank/internal/adapters/telemetry"
	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/clank/internal/core/ports/mocks"
	"go.trai.ch/clank/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

// testBuffer is the editing buffer the pipeline tests run against. The
// cursor sits at the end, after the partial identifier "vec" on line 3.
const testBuffer = "#include <vector>\nint main() {\n  std::vec"

// fakeProcess delivers pre-staged events to the driver's collector.
type fakeProcess struct {
	events    chan ports.Event
	closeOnce sync.Once

	// keepAlive leaves the event channel open across Terminate so a test
	// can deliver events after the driver has released the process.
	keepAlive bool
}

func newFakeProcess(events ...ports.Event) *fakeProcess {
	ch := make(chan ports.Event, len(events)+1)
	for _, ev := range events {
		ch <- ev
	}
	return &fakeProcess{events: ch}
}

func (p *fakeProcess) Events() <-chan ports.Event { return p.events }

func (p *fakeProcess) Terminate() {
	if p.keepAlive {
		return
	}
	p.closeOnce.Do(func() { close(p.events) })
}

// captureConsumer hands the delivered output to the test goroutine.
type captureConsumer struct {
	ch chan string
}

func newCaptureConsumer() *captureConsumer {
	return &captureConsumer{ch: make(chan string, 1)}
}

func (c *captureConsumer) OnCompletionOutput(output string) { c.ch <- output }

func (c *captureConsumer) wait(t *testing.T) string {
	t.Helper()
	select {
	case out := <-c.ch:
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completion output")
		return ""
	}
}

// pipelineEditor wires a MockEditor to testBuffer with the cursor at the
// end of the buffer.
func pipelineEditor(ctrl *gomock.Controller, source string) *mocks.MockEditor {
	ed := mocks.NewMockEditor(ctrl)
	ed.EXPECT().FileName().Return(source).AnyTimes()
	ed.EXPECT().ProjectName().Return("app").AnyTimes()
	ed.EXPECT().CurrentPosition().Return(len(testBuffer)).AnyTimes()
	ed.EXPECT().CurrentLine().Return(2).AnyTimes()
	ed.EXPECT().PositionFromLine(2).Return(31).AnyTimes()
	ed.EXPECT().TextRange(0, len(testBuffer)).Return(testBuffer).AnyTimes()
	return ed
}

// pipelineWorkspace wires a MockWorkspace with one open project and a
// plain build configuration.
func pipelineWorkspace(ctrl *gomock.Controller) *mocks.MockWorkspace {
	workspace := mocks.NewMockWorkspace(ctrl)
	workspace.EXPECT().IsOpen().Return(true).AnyTimes()
	workspace.EXPECT().CompletionEnabled().Return(true).AnyTimes()
	workspace.EXPECT().ClangBinary().Return("").AnyTimes()
	workspace.EXPECT().SelectedConfiguration().Return("Debug").AnyTimes()
	workspace.EXPECT().Environment("app").Return(nil).AnyTimes()
	workspace.EXPECT().ProjectBuildConfig("app", "Debug").Return(domain.BuildConfig{
		Name:           "Debug",
		CompileOptions: "-std=c++17",
	}, nil).AnyTimes()
	return workspace
}

func newTestDriver(
	t *testing.T,
	ctrl *gomock.Controller,
	workspace ports.Workspace,
	launcher ports.Launcher,
	consumer ports.Consumer,
	cacheDir string,
) *driver.Driver {
	t.Helper()
	locator := mocks.NewMockIncludeLocator(ctrl)
	locator.EXPECT().Locate(gomock.Any(), "clang").Return(nil, nil).AnyTimes()
	return driver.New(
		workspace,
		launcher,
		mocks.NewMockRunner(ctrl),
		locator,
		consumer,
		logger.NewNop(),
		telemetry.NewNoop(),
		driver.WithCacheDir(cacheDir),
	)
}

func TestDriver_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srcDir := t.TempDir()
	cacheDir := filepath.Join(t.TempDir(), "pch")
	source := filepath.Join(srcDir, "main.cpp")

	workspace := pipelineWorkspace(ctrl)
	editor := pipelineEditor(ctrl, source)
	launcher := mocks.NewMockLauncher(ctrl)
	consumer := newCaptureConsumer()

	var pchHeader, probeContent string

	preProcess := launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (ports.Process, error) {
			assert.Equal(t, domain.StagePreProcess, cmd.Stage)
			assert.Equal(t, srcDir, cmd.Dir)
			assert.Equal(t, domain.PreprocessOutputPath(cacheDir, source), cmd.CaptureFile)
			err := os.WriteFile(cmd.CaptureFile, []byte("# 1 \"/usr/include/vector\"\n"), 0o644)
			require.NoError(t, err)
			return newFakeProcess(ports.Event{Terminated: true}), nil
		})

	createPCH := launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (ports.Process, error) {
			assert.Equal(t, domain.StageCreatePCH, cmd.Stage)
			header, err := os.ReadFile(domain.PCHHeaderPath(cacheDir, source))
			require.NoError(t, err)
			pchHeader = string(header)
			err = os.WriteFile(domain.PCHArtifactPath(cacheDir, source), []byte("pch"), 0o644)
			require.NoError(t, err)
			return newFakeProcess(ports.Event{Terminated: true}), nil
		})

	codeComplete := launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (ports.Process, error) {
			assert.Equal(t, domain.StageCodeComplete, cmd.Stage)
			assert.Contains(t, cmd.Args, "-code-completion-at=main_clang_tmp.cpp:3:8")
			assert.Contains(t, cmd.Args, "-include-pch")
			probe, err := os.ReadFile(domain.ProbePath(source))
			require.NoError(t, err)
			probeContent = string(probe)
			return newFakeProcess(
				ports.Event{Data: []byte("COMPLETION: vector : [#std::vector#]\n")},
				ports.Event{Terminated: true},
			), nil
		})

	gomock.InOrder(preProcess, createPCH, codeComplete)

	drv := newTestDriver(t, ctrl, workspace, launcher, consumer, cacheDir)
	drv.RequestCompletion(context.Background(), editor)

	out := consumer.wait(t)
	assert.Equal(t, "COMPLETION: vector : [#std::vector#]\n", out)

	assert.False(t, drv.Busy())
	assert.Equal(t, domain.StageIdle, drv.Stage())

	assert.Equal(t, "#include \"/usr/include/vector\"\n", pchHeader)
	assert.Equal(t, testBuffer, probeContent)

	entry := drv.Cache().Lookup(source)
	assert.True(t, entry.Built)
	assert.Equal(t, []string{"vector"}, entry.RemovedIncludes)
	assert.True(t, drv.Cache().IsValid(entry))

	// The transient preprocessor capture is gone once the PCH is built.
	_, err := os.Stat(domain.PreprocessOutputPath(cacheDir, source))
	assert.True(t, os.IsNotExist(err))
}

func TestDriver_CacheFastPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srcDir := t.TempDir()
	cacheDir := t.TempDir()
	source := filepath.Join(srcDir, "main.cpp")
	artifact := domain.PCHArtifactPath(cacheDir, source)
	require.NoError(t, os.WriteFile(artifact, []byte("pch"), 0o644))

	workspace := pipelineWorkspace(ctrl)
	editor := pipelineEditor(ctrl, source)
	launcher := mocks.NewMockLauncher(ctrl)
	consumer := newCaptureConsumer()

	// A valid entry with matching removed includes skips straight to the
	// completion stage.
	launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (ports.Process, error) {
			assert.Equal(t, domain.StageCodeComplete, cmd.Stage)
			return newFakeProcess(
				ports.Event{Data: []byte("COMPLETION: vector : [#std::vector#]\n")},
				ports.Event{Terminated: true},
			), nil
		}).
		Times(1)

	drv := newTestDriver(t, ctrl, workspace, launcher, consumer, cacheDir)
	drv.Cache().Store(source, artifact, []string{"vector"}, nil)

	drv.RequestCompletion(context.Background(), editor)

	assert.Equal(t, "COMPLETION: vector : [#std::vector#]\n", consumer.wait(t))
	assert.False(t, drv.Busy())
}

func TestDriver_BusyDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srcDir := t.TempDir()
	source := filepath.Join(srcDir, "main.cpp")

	workspace := pipelineWorkspace(ctrl)
	editor := pipelineEditor(ctrl, source)
	launcher := mocks.NewMockLauncher(ctrl)
	consumer := mocks.NewMockConsumer(ctrl)

	// The process never terminates, so the slot stays occupied and the
	// second request must be dropped without another launch.
	launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		Return(newFakeProcess(), nil).
		Times(1)

	drv := newTestDriver(t, ctrl, workspace, launcher, consumer, filepath.Join(t.TempDir(), "pch"))

	drv.RequestCompletion(context.Background(), editor)
	assert.True(t, drv.Busy())

	drv.RequestCompletion(context.Background(), editor)
	assert.True(t, drv.Busy())

	drv.Abort()
	assert.False(t, drv.Busy())
	assert.Equal(t, domain.StageIdle, drv.Stage())
}

func TestDriver_AbortDiscardsLateTermination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srcDir := t.TempDir()
	source := filepath.Join(srcDir, "main.cpp")

	workspace := pipelineWorkspace(ctrl)
	editor := pipelineEditor(ctrl, source)
	launcher := mocks.NewMockLauncher(ctrl)
	consumer := mocks.NewMockConsumer(ctrl)

	proc := &fakeProcess{events: make(chan ports.Event, 1), keepAlive: true}
	launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(proc, nil)

	drv := newTestDriver(t, ctrl, workspace, launcher, consumer, filepath.Join(t.TempDir(), "pch"))

	drv.RequestCompletion(context.Background(), editor)
	drv.Abort()

	// The termination event arrives after the abort released the slot. The
	// collector must drop it instead of advancing the pipeline; the mock
	// consumer fails the test if output is delivered.
	proc.events <- ports.Event{Terminated: true}

	require.Eventually(t, func() bool { return len(proc.events) == 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.False(t, drv.Busy())
}

func TestDriver_CompletionDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := filepath.Join(t.TempDir(), "main.cpp")

	workspace := mocks.NewMockWorkspace(ctrl)
	workspace.EXPECT().CompletionEnabled().Return(false)
	editor := pipelineEditor(ctrl, source)
	launcher := mocks.NewMockLauncher(ctrl)
	consumer := mocks.NewMockConsumer(ctrl)

	drv := newTestDriver(t, ctrl, workspace, launcher, consumer, t.TempDir())

	drv.RequestCompletion(context.Background(), editor)
	assert.False(t, drv.Busy())
	assert.Equal(t, domain.StageIdle, drv.Stage())
}

func TestDriver_NilEditor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drv := newTestDriver(
		t, ctrl,
		mocks.NewMockWorkspace(ctrl),
		mocks.NewMockLauncher(ctrl),
		mocks.NewMockConsumer(ctrl),
		t.TempDir(),
	)

	drv.RequestCompletion(context.Background(), nil)
	assert.False(t, drv.Busy())
}

func TestWriteProbe(t *testing.T) {
	t.Run("source file probed verbatim", func(t *testing.T) {
		dir := t.TempDir()
		source := filepath.Join(dir, "main.cpp")
		probe := domain.ProbePath(source)

		loc, err := driver.WriteProbe(probe, source, "int x = ", 1, 9)
		require.NoError(t, err)

		assert.Equal(t, "main_clang_tmp.cpp", loc.File)
		assert.Equal(t, 1, loc.Line)
		assert.Equal(t, 9, loc.Column)

		content, err := os.ReadFile(probe)
		require.NoError(t, err)
		assert.Equal(t, "int x = ", string(content))
	})

	t.Run("header probed through include wrapper", func(t *testing.T) {
		dir := t.TempDir()
		source := filepath.Join(dir, "util.h")
		probe := domain.ProbePath(source)

		loc, err := driver.WriteProbe(probe, source, "struct S { int ", 1, 16)
		require.NoError(t, err)

		// The location stays in the header itself; the wrapper only gives
		// clang a translation unit to parse.
		assert.Equal(t, source, loc.File)

		content, err := os.ReadFile(probe)
		require.NoError(t, err)
		assert.Equal(t, "#include <util.h>\n", string(content))
	})

	t.Run("unwritable probe path", func(t *testing.T) {
		_, err := driver.WriteProbe(
			filepath.Join(t.TempDir(), "missing", "p.cpp"), "/x/main.cpp", "int", 1, 1)
		assert.ErrorIs(t, err, domain.ErrProbeWriteFailed)
	})
}

func TestIdentifierPrefix(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   string
	}{
		{"empty buffer", "", ""},
		{"bare identifier", "abc", "abc"},
		{"member access", "foo.ba", "ba"},
		{"arrow with nothing typed", "ptr->", ""},
		{"scope operator", "std::vec", "vec"},
		{"digits and underscores", "x + y1_z2", "y1_z2"},
		{"trailing space", "foo ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, driver.IdentifierPrefix(tt.buffer))
		})
	}
}
