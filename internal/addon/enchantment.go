package addon

// Enchantment идентификатор зачарования Bedrock Edition.
// См. https://wiki.bedrock.dev/items/enchantments.html
type Enchantment string

const (
	EnchantSilkTouch            Enchantment = "silk_touch"
	EnchantFortune              Enchantment = "fortune"
	EnchantEfficiency           Enchantment = "efficiency"
	EnchantLuckOfTheSea         Enchantment = "luck_of_the_sea"
	EnchantLure                 Enchantment = "lure"
	EnchantSharpness            Enchantment = "sharpness"
	EnchantSmite                Enchantment = "smite"
	EnchantBaneOfArthropods     Enchantment = "bane_of_arthropods"
	EnchantFireAspect           Enchantment = "fire_aspect"
	EnchantKnockback            Enchantment = "knockback"
	EnchantLooting              Enchantment = "looting"
	EnchantPower                Enchantment = "power"
	EnchantFlame                Enchantment = "flame"
	EnchantPunch                Enchantment = "punch"
	EnchantInfinity             Enchantment = "infinity"
	EnchantMultishot            Enchantment = "multishot"
	EnchantPiercing             Enchantment = "piercing"
	EnchantQuickCharge          Enchantment = "quick_charge"
	EnchantImpaling             Enchantment = "impaling"
	EnchantRiptide              Enchantment = "riptide"
	EnchantLoyalty              Enchantment = "loyalty"
	EnchantChanneling           Enchantment = "channeling"
	EnchantProtection           Enchantment = "protection"
	EnchantProjectileProtection Enchantment = "projectile_protection"
	EnchantFireProtection       Enchantment = "fire_protection"
	EnchantBlastProtection      Enchantment = "blast_protection"
	EnchantFeatherFalling       Enchantment = "feather_falling"
	EnchantThorns               Enchantment = "thorns"
	EnchantFrostWalker          Enchantment = "frost_walker"
	EnchantRespiration          Enchantment = "respiration"
	EnchantAquaAffinity         Enchantment = "aqua_affinity"
	EnchantCurseOfBinding       Enchantment = "curse_of_binding"
	EnchantDepthStrider         Enchantment = "depth_strider"
	EnchantSoulSpeed            Enchantment = "soul_speed"
	EnchantUnbreaking           Enchantment = "unbreaking"
	EnchantMending              Enchantment = "mending"
	EnchantCurseOfVanishing     Enchantment = "curse_of_vanishing"
)

var enchantments = []Enchantment{
	EnchantSilkTouch, EnchantFortune, EnchantEfficiency, EnchantLuckOfTheSea,
	EnchantLure, EnchantSharpness, EnchantSmite, EnchantBaneOfArthropods,
	EnchantFireAspect, EnchantKnockback, EnchantLooting, EnchantPower,
	EnchantFlame, EnchantPunch, EnchantInfinity, EnchantMultishot,
	EnchantPiercing, EnchantQuickCharge, EnchantImpaling, EnchantRiptide,
	EnchantLoyalty, EnchantChanneling, EnchantProtection,
	EnchantProjectileProtection, EnchantFireProtection, EnchantBlastProtection,
	EnchantFeatherFalling, EnchantThorns, EnchantFrostWalker,
	EnchantRespiration, EnchantAquaAffinity, EnchantCurseOfBinding,
	EnchantDepthStrider, EnchantSoulSpeed, EnchantUnbreaking, EnchantMending,
	EnchantCurseOfVanishing,
}

// AllEnchantments возвращает копию таблицы зачарований
func AllEnchantments() []Enchantment {
	out := make([]Enchantment, len(enchantments))
	copy(out, enchantments)
	return out
}

// Valid проверяет, что зачарование известно
func (e Enchantment) Valid() bool {
	for _, known := range enchantments {
		if known == e {
			return true
		}
	}
	return false
}
