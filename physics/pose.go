package physics

import (
	"fmt"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm3d/gm"
)

// Pose is the position and rotation of a body.
type Pose struct {
	Position gm.Vec2
	Angle    gm.Rad
}

// PoseOf reads the current pose of body.
func PoseOf(body *cp.Body) Pose {
	return Pose{
		Position: Vec2Of(body.Position()),
		Angle:    gm.Rad(body.Angle()),
	}
}

// ApplyTo moves body to the pose.
func (p Pose) ApplyTo(body *cp.Body) {
	body.SetPosition(VectorOf(p.Position))
	body.SetAngle(float64(p.Angle))
}

// Mat3 returns the transform from the local space of the body into world space.
// The body is rotated first and then moved to its position, the same way
// chipmunk's LocalToWorld does.
func (p Pose) Mat3() gm.Mat3 {
	return gm.RotationMat3(p.Angle).Mul(gm.TranslationMat3(p.Position))
}

func (p Pose) String() string {
	return fmt.Sprintf("pose(position=%s, angle=%s)", p.Position, p.Angle)
}

// BodyMat3 returns the local to world transform of body.
func BodyMat3(body *cp.Body) gm.Mat3 {
	return PoseOf(body).Mat3()
}
