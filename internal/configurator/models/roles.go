package models

// PartRole tells downstream consumers (collision checks, cut lists) what a part is.
type PartRole string

const (
	RoleBottom          PartRole = "BOTTOM"
	RoleTop             PartRole = "TOP"
	RoleLeftSide        PartRole = "LEFT_SIDE"
	RoleRightSide       PartRole = "RIGHT_SIDE"
	RoleShelf           PartRole = "SHELF"
	RoleBack            PartRole = "BACK"
	RoleDoor            PartRole = "DOOR"
	RolePartition       PartRole = "PARTITION"
	RoleDrawerFront     PartRole = "DRAWER_FRONT"
	RoleDrawerBottom    PartRole = "DRAWER_BOTTOM"
	RoleDrawerSideLeft  PartRole = "DRAWER_SIDE_LEFT"
	RoleDrawerSideRight PartRole = "DRAWER_SIDE_RIGHT"
	RoleDrawerBack      PartRole = "DRAWER_BACK"
	RoleDrawerBoxFront  PartRole = "DRAWER_BOX_FRONT"
	RoleLeg             PartRole = "LEG"
	RoleSideFrontLeft   PartRole = "SIDE_FRONT_LEFT"
	RoleSideFrontRight  PartRole = "SIDE_FRONT_RIGHT"
	RoleDecorativeTop   PartRole = "DECORATIVE_TOP"
	RoleDecorativeBot   PartRole = "DECORATIVE_BOTTOM"

	// Corner cabinets
	RoleCornerInternalSide PartRole = "CORNER_INTERNAL_SIDE"
	RoleCornerExternalSide PartRole = "CORNER_EXTERNAL_SIDE"
	RoleCornerFrontPanel   PartRole = "CORNER_FRONT_PANEL"
	RoleCornerDiagonal     PartRole = "CORNER_DIAGONAL_FRONT"
	RoleCornerArmAEnd      PartRole = "CORNER_ARM_A_END"
	RoleCornerArmBEnd      PartRole = "CORNER_ARM_B_END"
)

// IsDrawerBox reports whether the role belongs to a drawer carcass.
func (r PartRole) IsDrawerBox() bool {
	switch r {
	case RoleDrawerBottom, RoleDrawerSideLeft, RoleDrawerSideRight, RoleDrawerBack, RoleDrawerBoxFront:
		return true
	}
	return false
}

// IsFront reports whether the part is a visible front (door or drawer front).
func (r PartRole) IsFront() bool {
	return r == RoleDoor || r == RoleDrawerFront || r == RoleCornerDiagonal
}
