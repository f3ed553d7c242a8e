package pet

// Game constants
const (
	DefaultPetName = "Unnamed Pet"
	MaxStat        = 100.0
	MinStat        = 0.0
	StartingLevel  = 1
	MaxLevel       = 1000

	// Level ups announced one by one; bigger jumps get a single event
	MaxLevelUpEvents = 5

	// Activity dwell durations (seconds)
	EatingDuration  = 3.0
	PlayingDuration = 5.0
	BathingDuration = 4.0
	MinSleepSeconds = 5.0
	MaxSleepSeconds = 15.0

	// Action side effects not covered by the balancing profile
	PlayEnergyCost = 10.0

	// Autonomous behavior
	UrgentNeedThreshold = 30.0 // Any need below this drives the AI decision
	ForceSleepThreshold = 20.0 // Energy below this puts an idle pet to sleep immediately
	AutoWakeEnergy      = MaxStat
	MinDecisionInterval = 5.0
	MaxDecisionInterval = 10.0
	MinWanderInterval   = 5.0
	MaxWanderInterval   = 15.0

	// Status display
	CriticalStatThreshold = 30.0
	DrowsyThreshold       = 40.0

	// Experience awarded by the item-use collaborator
	FeedExperience  = 5.0
	PlayExperience  = 5.0
	CleanExperience = 5.0
	HealExperience  = 5.0

	// Status emojis
	StatusEmojiIdle     = "😸"
	StatusEmojiPlaying  = "🎾"
	StatusEmojiSleeping = "😴"
	StatusEmojiEating   = "🍖"
	StatusEmojiBathing  = "🛁"
	StatusEmojiHungry   = "🙀"
	StatusEmojiSad      = "😿"
	StatusEmojiSick     = "🤢"
	StatusEmojiTired    = "😾"
	StatusEmojiDirty    = "💩"
)
