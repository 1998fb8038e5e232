package dual

import (
	"math"
	"testing"

	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestDlerpSpring_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spring  DlerpSpring
		wantErr error
	}{
		{"zero value", DlerpSpring{}, nil},
		{"clamped", DlerpSpring{Stiffness: 10, Damping: 2, Clamp: true}, nil},
		{"negative stiffness", DlerpSpring{Stiffness: -1}, spring.ErrNegativeStiffness},
		{"negative damping", DlerpSpring{Stiffness: 1, Damping: -0.5}, ErrNegativeDamping},
		{"NaN", DlerpSpring{Stiffness: math.NaN()}, spring.ErrNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spring.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSpringDamp_Converges(t *testing.T) {
	current := Identity()
	target := FromPositionRotation(mgl64.Vec3{1, 2, -3}, quat.FromAngleAxis(1.2, mgl64.Vec3{1, 0, 1}.Normalize()))
	cfg := spring.Config{Stiffness: 100}
	var twist rigid.Twist

	for range 300 {
		current, twist = SpringDamp(current, target, twist, cfg, cfg, 1.0/60)
	}

	require.True(t, current.ApproxEqual(target, 1e-5), "ended at %v, want %v", current, target)
	require.Less(t, twist.LinearVelocity.Len(), 1e-3)
	require.Less(t, twist.AngularVelocity.Len(), 1e-3)
}

func TestSpringDampDlerp_ClampStopsOnTarget(t *testing.T) {
	current := Identity()
	target := FromPositionRotation(mgl64.Vec3{1, 0, 0}, quat.FromAngleAxis(math.Pi/2, quat.Up))
	stiff := DlerpSpring{Stiffness: 1e4}

	clamped := stiff
	clamped.Clamp = true
	got, velocity := SpringDampDlerp(current, target, 0, clamped, 0.1)
	require.Greater(t, velocity*0.1, 1.0, "the step should ask for more than the whole way")
	require.True(t, got.ApproxEqual(target, 1e-9), "clamped step = %v, want %v", got, target)

	got, _ = SpringDampDlerp(current, target, 0, stiff, 0.1)
	require.False(t, got.ApproxEqual(target, 1e-3), "unclamped step should overshoot, got %v", got)
}

func TestSpringDampDlerp_ApproachesMonotonically(t *testing.T) {
	current := Identity()
	target := FromPositionRotation(mgl64.Vec3{}, quat.FromAngleAxis(math.Pi/2, quat.Forward))
	s := DlerpSpring{Stiffness: 50, Damping: 2, Clamp: true}
	var velocity float64

	start := quat.Angle(current.Real, target.Real)
	previous := start
	for range 600 {
		current, velocity = SpringDampDlerp(current, target, velocity, s, 1.0/60)

		angle := quat.Angle(current.Real, target.Real)
		require.LessOrEqual(t, angle, previous+1e-12)
		previous = angle
	}
	require.Less(t, previous, 0.5*start)
}

func TestSpringDampDlerp_AtTarget(t *testing.T) {
	target := FromPositionRotation(mgl64.Vec3{0, 1, 0}, quat.FromAngleAxis(0.3, quat.Right))

	got, velocity := SpringDampDlerp(target, target, 0, DlerpSpring{Stiffness: 10, Damping: 1}, 1.0/60)
	require.InDelta(t, 0, velocity, 1e-12)
	require.True(t, got.ApproxEqual(target, 1e-12))
}

func TestIntegrate(t *testing.T) {
	q := FromPositionRotation(mgl64.Vec3{1, 0, 0}, quat.Identity())
	twist := rigid.NewTwist(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 0.5, 0})

	for range 100 {
		q = Integrate(q, twist, 0.01)
	}

	require.True(t, q.Position().ApproxEqualThreshold(mgl64.Vec3{1, 2, 0}, 1e-9), "position %v", q.Position())
	require.InDelta(t, 0.5, quat.Angle(q.Real, quat.Identity()), 1e-5)
}
