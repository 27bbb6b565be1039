package entity

// Body-type labels used by the quiz scoring scheme. The six-category
// constitutional scheme is the canonical one; every option row carries
// exactly one of these labels.
const (
	BodyTypeQiDeficient       = "qi_deficient"
	BodyTypeYangDeficient     = "yang_deficient"
	BodyTypeYinDeficient      = "yin_deficient"
	BodyTypeLiverQiStagnation = "liver_qi_stagnation"
	BodyTypeDampHeat          = "damp_heat"
	BodyTypeBalanced          = "balanced"

	// BodyTypeUnsure is assigned when no submitted answer carries a usable label.
	BodyTypeUnsure = "unsure"
)
