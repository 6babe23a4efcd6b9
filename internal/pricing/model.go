package pricing

type SizeTier string

const (
	SizeXS  SizeTier = "XS"
	SizeS   SizeTier = "S"
	SizeM   SizeTier = "M"
	SizeL   SizeTier = "L"
	SizeXL  SizeTier = "XL"
	SizeXXL SizeTier = "XXL"
)

type DetailLevel string

const (
	DetailMinimal  DetailLevel = "MINIMAL"
	DetailModerate DetailLevel = "MODERATE"
	DetailDetailed DetailLevel = "DETAILED"
	DetailHigh     DetailLevel = "HIGH"
	DetailPhoto    DetailLevel = "PHOTO"
)

type BackgroundLevel string

const (
	BackgroundNone     BackgroundLevel = "NONE"
	BackgroundAbstract BackgroundLevel = "ABSTRACT"
	BackgroundSimple   BackgroundLevel = "SIMPLE"
	BackgroundFull     BackgroundLevel = "FULL"
	BackgroundComplex  BackgroundLevel = "COMPLEX"
)

type Medium string

const (
	MediumAcrylic                  Medium = "acrylic"
	MediumWatercolor               Medium = "watercolor"
	MediumGraphite                 Medium = "graphite"
	MediumCharcoal                 Medium = "charcoal"
	MediumColoredPencil            Medium = "colored_pencil"
	MediumClaySmall                Medium = "clay_small"
	MediumWoodSmall                Medium = "wood_small"
	MediumMetalSmall               Medium = "metal_small"
	Medium3DPrintExisting          Medium = "3d_print_existing"
	Medium3DDesignPrint            Medium = "3d_design_print"
	MediumSublimationDesign        Medium = "sublimation_design"
	MediumSublimationPrintedSheet  Medium = "sublimation_printed_sheet"
	MediumHeatTransferFinishedItem Medium = "heat_transfer_finished_item"

	// Review-only: no formula applies, a human quotes manually.
	MediumMural              Medium = "mural"
	MediumCustomShoesClothes Medium = "custom_shoes_clothing"
	MediumMailboxPaint       Medium = "mailbox_paint"
	MediumBottleArt          Medium = "bottle_art"
)

// XXL is intentionally absent: the largest tier always goes to manual review.
var sizeBase = map[SizeTier]float64{
	SizeXS: 120,
	SizeS:  220,
	SizeM:  400,
	SizeL:  700,
	SizeXL: 1200,
}

var detailMult = map[DetailLevel]float64{
	DetailMinimal:  1.0,
	DetailModerate: 1.2,
	DetailDetailed: 1.5,
	DetailHigh:     1.9,
	DetailPhoto:    2.4,
}

var backgroundMult = map[BackgroundLevel]float64{
	BackgroundNone:     1.0,
	BackgroundAbstract: 1.1,
	BackgroundSimple:   1.25,
	BackgroundFull:     1.5,
	BackgroundComplex:  1.9,
}

var mediumMult = map[Medium]float64{
	MediumGraphite:      1.0,
	MediumCharcoal:      1.0,
	MediumColoredPencil: 1.2,
	MediumWatercolor:    1.3,
	MediumAcrylic:       1.4,

	MediumClaySmall:  1.6,
	MediumWoodSmall:  1.7,
	MediumMetalSmall: 1.9,

	Medium3DPrintExisting: 1.1,
	Medium3DDesignPrint:   1.6,

	MediumSublimationDesign:        1.0,
	MediumSublimationPrintedSheet:  1.2,
	MediumHeatTransferFinishedItem: 1.4,
}

var reviewOnlyMediums = map[Medium]bool{
	MediumMural:              true,
	MediumCustomShoesClothes: true,
	MediumMailboxPaint:       true,
	MediumBottleArt:          true,
}

const rushMult = 1.35

// DepositPctFor returns the deposit fraction for an estimate total.
// Bands are inclusive-low, exclusive-high.
func DepositPctFor(total float64) float64 {
	if total < 400 {
		return 0.3
	}
	if total < 1000 {
		return 0.4
	}
	return 0.5
}
