package addon

import "fmt"

// BlockSound идентификатор набора звуков блока в blocks.json
type BlockSound string

// Звуки блоков Bedrock Edition
const (
	SoundNormal             BlockSound = "normal"
	SoundDefault            BlockSound = "default"
	SoundGravel             BlockSound = "gravel"
	SoundWood               BlockSound = "wood"
	SoundGrass              BlockSound = "grass"
	SoundMetal              BlockSound = "metal"
	SoundStone              BlockSound = "stone"
	SoundCloth              BlockSound = "cloth"
	SoundGlass              BlockSound = "glass"
	SoundSand               BlockSound = "sand"
	SoundSnow               BlockSound = "snow"
	SoundLadder             BlockSound = "ladder"
	SoundAnvil              BlockSound = "anvil"
	SoundSlime              BlockSound = "slime"
	SoundSilent             BlockSound = "silent"
	SoundItemFrame          BlockSound = "itemframe"
	SoundTurtleEgg          BlockSound = "turtle_egg"
	SoundBamboo             BlockSound = "bamboo"
	SoundBambooSapling      BlockSound = "bamboo_sapling"
	SoundLantern            BlockSound = "lantern"
	SoundScaffolding        BlockSound = "scaffolding"
	SoundSweetBerryBush     BlockSound = "sweet_berry_bush"
	SoundSoulSand           BlockSound = "soul_sand"
	SoundSoulSoil           BlockSound = "soul_soil"
	SoundNylium             BlockSound = "nylium"
	SoundStem               BlockSound = "stem"
	SoundRoots              BlockSound = "roots"
	SoundShroomlight        BlockSound = "shroomlight"
	SoundWeepingVines       BlockSound = "weeping_vines"
	SoundBasalt             BlockSound = "basalt"
	SoundBoneBlock          BlockSound = "bone_block"
	SoundNetherBrick        BlockSound = "nether_brick"
	SoundNetherrack         BlockSound = "netherrack"
	SoundNetherSprouts      BlockSound = "nether_sprouts"
	SoundNetherWart         BlockSound = "nether_wart"
	SoundNetherGoldOre      BlockSound = "nether_gold_ore"
	SoundAncientDebris      BlockSound = "ancient_debris"
	SoundHoneyBlock         BlockSound = "honey_block"
	SoundCoral              BlockSound = "coral"
	SoundNetherite          BlockSound = "netherite"
	SoundLodestone          BlockSound = "lodestone"
	SoundChain              BlockSound = "chain"
	SoundVines              BlockSound = "vines"
	SoundCopper             BlockSound = "copper"
	SoundCandle             BlockSound = "candle"
	SoundAmethystBlock      BlockSound = "amethyst_block"
	SoundAmethystCluster    BlockSound = "amethyst_cluster"
	SoundLargeAmethystBud   BlockSound = "large_amethyst_bud"
	SoundMediumAmethystBud  BlockSound = "medium_amethyst_bud"
	SoundSmallAmethystBud   BlockSound = "small_amethyst_bud"
	SoundTuff               BlockSound = "tuff"
	SoundCalcite            BlockSound = "calcite"
	SoundDripstoneBlock     BlockSound = "dripstone_block"
	SoundPointedDripstone   BlockSound = "pointed_dripstone"
	SoundAzalea             BlockSound = "azalea"
	SoundAzaleaLeaves       BlockSound = "azalea_leaves"
	SoundFloweringAzalea    BlockSound = "flowering_azalea"
	SoundCaveVines          BlockSound = "cave_vines"
	SoundBigDripleaf        BlockSound = "big_dripleaf"
	SoundSmallDripleaf      BlockSound = "small_dripleaf"
	SoundSporeBlossom       BlockSound = "spore_blossom"
	SoundMossBlock          BlockSound = "moss_block"
	SoundMossCarpet         BlockSound = "moss_carpet"
	SoundHangingRoots       BlockSound = "hanging_roots"
	SoundGlowLichen         BlockSound = "glow_lichen"
	SoundRootedDirt         BlockSound = "rooted_dirt"
	SoundDeepslate          BlockSound = "deepslate"
	SoundDeepslateBricks    BlockSound = "deepslate_bricks"
	SoundPowderSnow         BlockSound = "powder_snow"
	SoundSculkSensor        BlockSound = "sculk_sensor"
	SoundSculk              BlockSound = "sculk"
	SoundSculkVein          BlockSound = "sculk_vein"
	SoundSculkShrieker      BlockSound = "sculk_shrieker"
	SoundSculkCatalyst      BlockSound = "sculk_catalyst"
	SoundMud                BlockSound = "mud"
	SoundMudBricks          BlockSound = "mud_bricks"
	SoundPackedMud          BlockSound = "packed_mud"
	SoundMangroveRoots      BlockSound = "mangrove_roots"
	SoundMuddyMangroveRoots BlockSound = "muddy_mangrove_roots"
	SoundFroglight          BlockSound = "froglight"
	SoundFrogspawn          BlockSound = "frog_spawn"
)

var blockSounds = map[BlockSound]struct{}{}

func init() {
	for _, s := range []BlockSound{
		SoundNormal, SoundDefault, SoundGravel, SoundWood, SoundGrass, SoundMetal,
		SoundStone, SoundCloth, SoundGlass, SoundSand, SoundSnow, SoundLadder,
		SoundAnvil, SoundSlime, SoundSilent, SoundItemFrame, SoundTurtleEgg,
		SoundBamboo, SoundBambooSapling, SoundLantern, SoundScaffolding,
		SoundSweetBerryBush, SoundSoulSand, SoundSoulSoil, SoundNylium, SoundStem,
		SoundRoots, SoundShroomlight, SoundWeepingVines, SoundBasalt,
		SoundBoneBlock, SoundNetherBrick, SoundNetherrack, SoundNetherSprouts,
		SoundNetherWart, SoundNetherGoldOre, SoundAncientDebris, SoundHoneyBlock,
		SoundCoral, SoundNetherite, SoundLodestone, SoundChain, SoundVines,
		SoundCopper, SoundCandle, SoundAmethystBlock, SoundAmethystCluster,
		SoundLargeAmethystBud, SoundMediumAmethystBud, SoundSmallAmethystBud,
		SoundTuff, SoundCalcite, SoundDripstoneBlock, SoundPointedDripstone,
		SoundAzalea, SoundAzaleaLeaves, SoundFloweringAzalea, SoundCaveVines,
		SoundBigDripleaf, SoundSmallDripleaf, SoundSporeBlossom, SoundMossBlock,
		SoundMossCarpet, SoundHangingRoots, SoundGlowLichen, SoundRootedDirt,
		SoundDeepslate, SoundDeepslateBricks, SoundPowderSnow, SoundSculkSensor,
		SoundSculk, SoundSculkVein, SoundSculkShrieker, SoundSculkCatalyst,
		SoundMud, SoundMudBricks, SoundPackedMud, SoundMangroveRoots,
		SoundMuddyMangroveRoots, SoundFroglight, SoundFrogspawn,
	} {
		blockSounds[s] = struct{}{}
	}
}

// Valid проверяет, что звук есть в таблице
func (s BlockSound) Valid() bool {
	_, ok := blockSounds[s]
	return ok
}

// ParseBlockSound разбирает идентификатор звука; пустая строка даёт stone
func ParseBlockSound(s string) (BlockSound, error) {
	if s == "" {
		return SoundStone, nil
	}
	sound := BlockSound(s)
	if !sound.Valid() {
		return "", fmt.Errorf("unknown block sound %q", s)
	}
	return sound, nil
}
