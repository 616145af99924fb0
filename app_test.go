package spincube

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_changeState(t *testing.T) {
	app := &App{
		stateful:     true,
		initialState: 1,
		state:        1,
		finalState:   2,
	}

	// Test changing state
	app.changeState(2)
	if app.nextState != State(2) {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

	// Test executing state change
	app.executeChangeState(2)
	if app.state != State(2) {
		t.Errorf("The app state should change correctly.")
	}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_addResources_RejectsValues(t *testing.T) {
	app := &App{resources: make(map[reflect.Type]any)}
	assert.Panics(t, func() { app.addResources(MockResource1{name: "value"}) })
}

func TestResource(t *testing.T) {
	app := NewAppBuilder().Build()
	_, ok := Resource[MockResource1](app)
	assert.False(t, ok)

	res := NewMockResource1("r")
	app.addResources(res)
	got, ok := Resource[MockResource1](app)
	require.True(t, ok)
	assert.Same(t, res, got)
}

func TestApp_callSystem_ResolvesResourcesAndCommands(t *testing.T) {
	app := NewAppBuilder().Build()
	app.addResources(NewMockResource1("one"), NewMockResource2("two"))

	called := false
	app.callSystem(func(cmd *Commands, r1 *MockResource1, r2 *MockResource2) {
		called = true
		assert.NotNil(t, cmd)
		assert.Equal(t, "one", r1.name)
		assert.Equal(t, "two", r2.name)
	})
	assert.True(t, called)
}

func TestApp_callSystem_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.PanicsWithValue(t, unresolvedDependency(
		reflect.ValueOf(systemNeedingResource1),
		reflect.TypeOf(systemNeedingResource1),
		reflect.TypeOf(&MockResource1{}),
	), func() {
		app.callSystem(systemNeedingResource1)
	})
}

func systemNeedingResource1(r *MockResource1) {}

type countingResource struct {
	calls map[string]int
	order []string
}

func TestApp_Run_StatesAndExit(t *testing.T) {
	counts := &countingResource{calls: map[string]int{}}
	record := func(name string) func(*countingResource) {
		return func(c *countingResource) {
			c.calls[name]++
			c.order = append(c.order, name)
		}
	}

	app := NewAppBuilder().UseStates(0, 1).Build()
	app.addResources(counts)

	app.UseSystem(System(record("enter0")).InState(OnEnter(0))).
		UseSystem(System(func(cmd *Commands, c *countingResource) {
			c.calls["enter0-change"]++
			cmd.ChangeState(1)
		}).InState(OnEnter(0))).
		UseSystem(System(record("exit0")).InState(OnExit(0))).
		UseSystem(System(record("enter1")).InState(OnEnter(1))).
		UseSystem(System(func(cmd *Commands, c *countingResource) {
			c.calls["execute1"]++
			if c.calls["execute1"] == 3 {
				cmd.Exit()
			}
		}).InState(OnExecute(1))).
		UseSystem(System(record("exit1")).InState(OnExit(1))).
		UseSystem(System(record("always")).RunAlways())

	app.Run()

	assert.Equal(t, State(1), app.State())
	assert.Equal(t, 1, counts.calls["enter0"])
	assert.Equal(t, 1, counts.calls["exit0"])
	assert.Equal(t, 1, counts.calls["enter1"])
	assert.Equal(t, 3, counts.calls["execute1"])
	assert.Equal(t, 1, counts.calls["exit1"])
	// One iteration in state 0 plus three in state 1.
	assert.Equal(t, 4, counts.calls["always"])
	assert.Equal(t, []string{"enter0", "always", "exit0", "enter1"}, counts.order[:4])
}

func TestApp_Run_Stateless(t *testing.T) {
	app := NewAppBuilder().Build()
	iterations := 0
	app.UseSystem(System(func(cmd *Commands) {
		iterations++
		if iterations == 5 {
			cmd.Exit()
		}
	}))
	app.Run()
	assert.Equal(t, 5, iterations)
}

func TestApp_StagesRunInOrder(t *testing.T) {
	app := NewAppBuilder().Build()
	custom := Stage{Name: "Custom"}
	app.UseStage(custom, AfterStage(Update))

	var order []string
	for _, stage := range []Stage{Render, custom, Update, Prelude, PostRender} {
		stage := stage
		app.UseSystem(System(func() { order = append(order, stage.Name) }).InStage(stage))
	}
	app.UseSystem(System(func(cmd *Commands) { cmd.Exit() }).InStage(Finale))
	app.Run()

	assert.Equal(t, []string{"Prelude", "Update", "Custom", "Render", "PostRender"}, order)
}

func TestApp_UseStage_UnknownTargetPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.PanicsWithValue(t, "Stage Missing not found", func() {
		app.UseStage(Stage{Name: "New"}, BeforeStage(Stage{Name: "Missing"}))
	})
}

func TestApp_UseSystem_Panics(t *testing.T) {
	stateless := NewAppBuilder().Build()
	assert.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		stateless.UseSystem(System(func() {}).InState(OnEnter(0)))
	})
	assert.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		stateless.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})

	stateful := NewAppBuilder().UseStates(0, 1).Build()
	assert.PanicsWithValue(t, "State 7 doesn't exist", func() {
		stateful.UseSystem(System(func() {}).InState(OnExecute(7)))
	})
}

func TestApp_CommandsAreFlushedAfterEachStage(t *testing.T) {
	app := NewAppBuilder().Build()
	var eid EntityId
	seenInPostUpdate := false
	app.UseSystem(System(func(cmd *Commands) {
		eid = cmd.AddEntity(MockResource1{name: "component"})
		_, ok := Component[MockResource1](cmd, eid)
		assert.False(t, ok, "component must not be visible before the stage ends")
	}).InStage(Update))
	app.UseSystem(System(func(cmd *Commands) {
		c, ok := Component[MockResource1](cmd, eid)
		seenInPostUpdate = ok && c.name == "component"
		cmd.Exit()
	}).InStage(PostUpdate))

	app.Run()
	assert.True(t, seenInPostUpdate)
}
