// Package carddata holds static metadata for base-game cards. The run files
// only carry card names; rarity, owning character and card type come from
// this table.
package carddata

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity values
const (
	RarityBasic    = "BASIC"
	RarityCommon   = "COMMON"
	RarityUncommon = "UNCOMMON"
	RarityRare     = "RARE"
	RarityCurse    = "CURSE"
	RaritySpecial  = "SPECIAL"
	RarityUnknown  = "UNKNOWN"
)

// Card type values
const (
	TypeAttack  = "ATTACK"
	TypeSkill   = "SKILL"
	TypePower   = "POWER"
	TypeStatus  = "STATUS"
	TypeCurse   = "CURSE"
	TypeUnknown = "UNKNOWN"
)

// Character owners
const (
	OwnerIronclad  = "IRONCLAD"
	OwnerSilent    = "THE_SILENT"
	OwnerDefect    = "DEFECT"
	OwnerWatcher   = "WATCHER"
	OwnerColorless = "COLORLESS"
	OwnerAny       = "ANY"
	OwnerUnknown   = "UNKNOWN"
)

// Info is the metadata attached to one card.
type Info struct {
	DisplayName string `json:"display_name"`
	Rarity      string `json:"rarity"`
	Character   string `json:"character"`
	Type        string `json:"type"`
}

var titleCaser = cases.Title(language.English)

// Lookup returns the metadata for a card name as it appears in run files.
// Unknown cards (typically modded content) fall back to a cleaned-up display
// name with UNKNOWN classification.
func Lookup(name string) Info {
	if info, ok := cards[name]; ok {
		return info
	}
	return Info{
		DisplayName: fallbackDisplayName(name),
		Rarity:      RarityUnknown,
		Character:   OwnerUnknown,
		Type:        TypeUnknown,
	}
}

// fallbackDisplayName tidies ids the table doesn't know: underscores become
// spaces and words are title-cased. Modded prefixes like "collector:" are
// kept so prefix-based exclusion still works downstream.
func fallbackDisplayName(name string) string {
	cleaned := strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(cleaned)
}

func card(rarity, character, cardType string, names ...string) map[string]Info {
	m := make(map[string]Info, len(names))
	for _, n := range names {
		m[n] = Info{DisplayName: n, Rarity: rarity, Character: character, Type: cardType}
	}
	return m
}

func merge(maps ...map[string]Info) map[string]Info {
	out := make(map[string]Info)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// cards maps card names as written by the game client to their metadata.
// Not exhaustive for mods; unknown names take the Lookup fallback.
var cards = merge(
	// Starters
	card(RarityBasic, OwnerIronclad, TypeAttack, "Strike_R", "Bash"),
	card(RarityBasic, OwnerIronclad, TypeSkill, "Defend_R"),
	card(RarityBasic, OwnerSilent, TypeAttack, "Strike_G", "Neutralize"),
	card(RarityBasic, OwnerSilent, TypeSkill, "Defend_G", "Survivor"),
	card(RarityBasic, OwnerDefect, TypeAttack, "Strike_B"),
	card(RarityBasic, OwnerDefect, TypeSkill, "Defend_B", "Dualcast", "Zap"),
	card(RarityBasic, OwnerWatcher, TypeAttack, "Strike_P", "Eruption"),
	card(RarityBasic, OwnerWatcher, TypeSkill, "Defend_P", "Vigilance"),
	// Reward-screen names use the display form without the color suffix
	card(RarityBasic, OwnerAny, TypeAttack, "Strike"),
	card(RarityBasic, OwnerAny, TypeSkill, "Defend"),

	// Ironclad
	card(RarityCommon, OwnerIronclad, TypeAttack,
		"Anger", "Body Slam", "Clash", "Cleave", "Clothesline", "Headbutt",
		"Heavy Blade", "Iron Wave", "Perfected Strike", "Pommel Strike",
		"Sword Boomerang", "Thunderclap", "Twin Strike", "Wild Strike"),
	card(RarityCommon, OwnerIronclad, TypeSkill,
		"Armaments", "Flex", "Havoc", "Shrug It Off", "True Grit", "Warcry"),
	card(RarityUncommon, OwnerIronclad, TypeAttack,
		"Blood for Blood", "Carnage", "Dropkick", "Hemokinesis", "Pummel",
		"Rampage", "Reckless Charge", "Searing Blow", "Sever Soul", "Uppercut",
		"Whirlwind"),
	card(RarityUncommon, OwnerIronclad, TypeSkill,
		"Battle Trance", "Bloodletting", "Burning Pact", "Disarm", "Dual Wield",
		"Entrench", "Flame Barrier", "Ghostly Armor", "Infernal Blade",
		"Intimidate", "Power Through", "Rage", "Second Wind", "Seeing Red",
		"Sentinel", "Shockwave", "Spot Weakness"),
	card(RarityUncommon, OwnerIronclad, TypePower,
		"Combust", "Dark Embrace", "Evolve", "Feel No Pain", "Fire Breathing",
		"Inflame", "Metallicize", "Rupture"),
	card(RarityRare, OwnerIronclad, TypeAttack,
		"Bludgeon", "Feed", "Fiend Fire", "Immolate", "Reaper"),
	card(RarityRare, OwnerIronclad, TypeSkill,
		"Double Tap", "Exhume", "Impervious", "Limit Break", "Offering"),
	card(RarityRare, OwnerIronclad, TypePower,
		"Barricade", "Berserk", "Brutality", "Corruption", "Demon Form",
		"Juggernaut"),

	// Silent
	card(RarityCommon, OwnerSilent, TypeAttack,
		"Bane", "Dagger Spray", "Dagger Throw", "Flying Knee", "Poisoned Stab",
		"Quick Slash", "Slice", "Sneaky Strike", "Sucker Punch"),
	card(RarityCommon, OwnerSilent, TypeSkill,
		"Acrobatics", "Backflip", "Blade Dance", "Cloak and Dagger",
		"Deadly Poison", "Deflect", "Dodge and Roll", "Outmaneuver",
		"Piercing Wail", "Prepared"),
	card(RarityUncommon, OwnerSilent, TypeAttack,
		"All-Out Attack", "Backstab", "Choke", "Dash", "Endless Agony",
		"Eviscerate", "Finisher", "Flechettes", "Heel Hook", "Masterful Stab",
		"Predator", "Riddle with Holes", "Skewer"),
	card(RarityUncommon, OwnerSilent, TypeSkill,
		"Blur", "Bouncing Flask", "Calculated Gamble", "Catalyst", "Concentrate",
		"Crippling Cloud", "Distraction", "Escape Plan", "Expertise",
		"Leg Sweep", "Reflex", "Setup", "Tactician", "Terror"),
	card(RarityUncommon, OwnerSilent, TypePower,
		"Accuracy", "Caltrops", "Footwork", "Infinite Blades", "Noxious Fumes",
		"Well-Laid Plans"),
	card(RarityRare, OwnerSilent, TypeAttack,
		"Die Die Die", "Glass Knife", "Grand Finale", "Unload"),
	card(RarityRare, OwnerSilent, TypeSkill,
		"Adrenaline", "Alchemize", "Bullet Time", "Burst", "Corpse Explosion",
		"Doppelganger", "Malaise", "Nightmare", "Phantasmal Killer", "Storm of Steel"),
	card(RarityRare, OwnerSilent, TypePower,
		"A Thousand Cuts", "After Image", "Envenom", "Tools of the Trade",
		"Wraith Form"),

	// Defect
	card(RarityCommon, OwnerDefect, TypeAttack,
		"Ball Lightning", "Barrage", "Beam Cell", "Claw", "Cold Snap",
		"Compile Driver", "Go for the Eyes", "Rebound", "Streamline",
		"Sweeping Beam"),
	card(RarityCommon, OwnerDefect, TypeSkill,
		"Charge Battery", "Coolheaded", "Hologram", "Leap", "Recursion",
		"Stack", "Steam Barrier", "TURBO"),
	card(RarityUncommon, OwnerDefect, TypeAttack,
		"Blizzard", "Bullseye", "Doom and Gloom", "FTL", "Melter", "Rip and Tear",
		"Scrape", "Sunder"),
	card(RarityUncommon, OwnerDefect, TypeSkill,
		"Aggregate", "Auto-Shields", "Boot Sequence", "Chaos", "Chill",
		"Consume", "Darkness", "Double Energy", "Equilibrium", "Force Field",
		"Fusion", "Genetic Algorithm", "Glacier", "Overclock", "Recycle",
		"Reinforced Body", "Reprogram", "Skim", "Tempest", "White Noise"),
	card(RarityUncommon, OwnerDefect, TypePower,
		"Capacitor", "Defragment", "Heatsinks", "Hello World", "Loop",
		"Self Repair", "Static Discharge", "Storm"),
	card(RarityRare, OwnerDefect, TypeAttack,
		"All for One", "Core Surge", "Hyperbeam", "Meteor Strike", "Thunder Strike"),
	card(RarityRare, OwnerDefect, TypeSkill,
		"Amplify", "Fission", "Multi-Cast", "Rainbow", "Reboot", "Seek"),
	card(RarityRare, OwnerDefect, TypePower,
		"Biased Cognition", "Buffer", "Creative AI", "Echo Form", "Electrodynamics",
		"Machine Learning"),

	// Watcher
	card(RarityCommon, OwnerWatcher, TypeAttack,
		"Bowling Bash", "Consecrate", "Crush Joints", "Cut Through Fate",
		"Empty Fist", "Flurry of Blows", "Flying Sleeves", "Follow-Up",
		"Just Lucky", "Sash Whip"),
	card(RarityCommon, OwnerWatcher, TypeSkill,
		"Crescendo", "Empty Body", "Evaluate", "Halt", "Pressure Points",
		"Prostrate", "Protect", "Third Eye", "Tranquility"),
	card(RarityUncommon, OwnerWatcher, TypeAttack,
		"Carve Reality", "Conclude", "Fear No Evil", "Reach Heaven", "Sands of Time",
		"Signature Move", "Talk to the Hand", "Tantrum", "Wallop", "Weave",
		"Wheel Kick", "Windmill Strike"),
	card(RarityUncommon, OwnerWatcher, TypeSkill,
		"Collect", "Deceive Reality", "Empty Mind", "Foreign Influence",
		"Indignation", "Inner Peace", "Meditate", "Perseverance", "Pray",
		"Sanctity", "Simmering Fury", "Swivel", "Wave of the Hand", "Worship",
		"Wreath of Flame"),
	card(RarityUncommon, OwnerWatcher, TypePower,
		"Battle Hymn", "Fasting", "Foresight", "Like Water", "Mental Fortress",
		"Nirvana", "Rushdown", "Study"),
	card(RarityRare, OwnerWatcher, TypeAttack,
		"Brilliance", "Lesson Learned", "Ragnarok"),
	card(RarityRare, OwnerWatcher, TypeSkill,
		"Alpha", "Blasphemy", "Conjure Blade", "Deus Ex Machina", "Judgment",
		"Omniscience", "Scrawl", "Spirit Shield", "Vault", "Wish"),
	card(RarityRare, OwnerWatcher, TypePower,
		"Deva Form", "Devotion", "Establishment", "Master Reality"),

	// Colorless
	card(RarityUncommon, OwnerColorless, TypeAttack,
		"Dramatic Entrance", "Flash of Steel", "Mind Blast", "Swift Strike"),
	card(RarityUncommon, OwnerColorless, TypeSkill,
		"Bandage Up", "Blind", "Dark Shackles", "Deep Breath", "Discovery",
		"Enlightenment", "Finesse", "Forethought", "Good Instincts",
		"Impatience", "Jack of All Trades", "Madness", "Panacea", "Panic Button",
		"Purity", "Trip"),
	card(RarityRare, OwnerColorless, TypeAttack, "HandOfGreed", "Ritual Dagger"),
	card(RarityRare, OwnerColorless, TypeSkill,
		"Apotheosis", "Chrysalis", "Master of Strategy", "Metamorphosis",
		"Secret Technique", "Secret Weapon", "The Bomb", "Thinking Ahead",
		"Transmutation", "Violence"),
	card(RarityRare, OwnerColorless, TypePower, "Magnetism", "Mayhem", "Panache", "Sadistic Nature"),

	// Statuses and curses
	card(RaritySpecial, OwnerAny, TypeStatus,
		"Burn", "Dazed", "Slimed", "Void", "Wound"),
	card(RarityCurse, OwnerAny, TypeCurse,
		"Ascender's Bane", "Clumsy", "Curse of the Bell", "Decay", "Doubt",
		"Injury", "Necronomicurse", "Normality", "Pain", "Parasite",
		"Regret", "Shame", "Writhe"),
)
