package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/galton/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

var testOpts = Options{ScreenW: 600, ScreenH: 600, Framerate: 60}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testOpts)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.InDelta(t, 1.0/60.0, g.DT(), 1e-12)
}

func TestNew_Framerate(t *testing.T) {
	tests := []struct {
		name      string
		framerate int
		want      float64
	}{
		{"30 fps", 30, 1.0 / 30.0},
		{"120 fps", 120, 1.0 / 120.0},
		{"zero falls back to 60", 0, 1.0 / 60.0},
		{"negative falls back to 60", -5, 1.0 / 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&mockScene{}, Options{ScreenW: 10, ScreenH: 10, Framerate: tt.framerate})
			assert.InDelta(t, tt.want, g.DT(), 1e-12)
		})
	}
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testOpts)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.InDelta(t, 1.0/60.0, mockInitial.lastDT, 1e-12)
	assert.Equal(t, 1, g.Frames())
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testOpts)

	g.Draw(nil)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, testOpts)

	w, h := g.Layout(1200, 1200)
	assert.Equal(t, 600, w)
	assert.Equal(t, 600, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, testOpts)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}

	g := New(scene1, testOpts)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: ebiten.Termination}

	g := New(scene1, testOpts)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination, "Error should propagate from scene")
	assert.Equal(t, 0, g.Frames())
}

func TestGame_Close(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, testOpts)

	g.Close()
	assert.Equal(t, 1, scene1.onExitCalled)
}
