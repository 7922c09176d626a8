package common

// Playfield.
const (
	GameWidth    = 800
	GameHeight   = 450
	GroundHeight = 80
	GroundY      = GameHeight - GroundHeight

	// FrameMillis is the reference frame length velocities are tuned against.
	FrameMillis = 1000.0 / 60.0
)

// Physics, in pixels per reference frame.
const (
	Gravity         = 0.6
	MonsterGravity  = Gravity * 0.5
	PlayerSpeed     = 4.0
	PlayerJumpForce = -14.0
	BossSpeed       = 2.0
)

// Combat.
const (
	PlayerAttackRange   = 60.0
	PlayerAttackDamage  = 10
	BossAttackRange     = 80.0
	BossAttackDamage    = 15
	SpecialAttackDamage = 40
	SpecialAttackRadius = 250.0
	SpecialCooldown     = 5000.0
	InvincibilityTime   = 1000.0
	WrongAnswerPenalty  = 20
)

// Timers, in milliseconds.
const (
	AttackDuration      = 300.0
	HurtDuration        = 300.0
	DeathDuration       = 700.0
	SpecialDuration     = 600.0
	DialogueDisplayTime = 3000.0
	AmbientInterval     = 5000.0
	FrameDuration       = 150.0
	FrameCount          = 4

	MonsterHurtDuration   = HurtDuration / 2
	MonsterInvincibleTime = InvincibilityTime / 3
	BossInvincibleTime    = InvincibilityTime / 2

	// BossHitWindowStart and BossHitWindowEnd bound the part of a boss attack
	// that can connect.
	BossHitWindowStart = 100.0
	BossHitWindowEnd   = 200.0
)

// Player.
const (
	PlayerHP     = 100
	PlayerWidth  = 32
	PlayerHeight = 48
	PlayerSpawnX = 100.0
)

// Scoring.
const (
	BossDefeatBonus    = 1000
	LevelCompleteBonus = 500
)

// Screen shake magnitudes.
const (
	ShakeDecayRate   = 0.05
	ShakeMonsterHit  = 5.0
	ShakeBossHit     = 10.0
	ShakeWrongAnswer = 10.0
	ShakeBetrayal    = 10.0
	ShakeUnlock      = 15.0
	ShakeSpecial     = 25.0
)

// Monster AI.
const (
	MonsterProximity       = 50.0
	MonsterReachX          = 60.0
	MonsterReachY          = 50.0
	MonsterCooldownBase    = 1500.0
	MonsterCooldownSpread  = 1000.0
	MonsterInitialCooldown = 1000.0

	MonsterSpawnMinX   = 300.0
	MonsterSpawnSpread = GameWidth - 500.0
	BatSpawnOffset     = 100.0
	BatHoverOffset     = 80.0
	BatHoverAmplitude  = 20.0
	BatHoverPeriod     = 300.0
)

// Boss AI.
const (
	BossSpawnX          = GameWidth - 200.0
	BossSize            = 64.0
	BossCooldownBase    = 2000.0
	BossCooldownSpread  = 1000.0
	BossInitialCooldown = 2000.0

	AllyFriendlyTime     = 5000.0
	AllyApproachSpeed    = BossSpeed * 0.5
	AllyClosenessRange   = 60.0
	AllyClosenessPercent = 95.0
	AllyBetrayalCooldown = 500.0
	SpecialUnlockPercent = 30.0

	RiddlerQuestionCooldown = 3000.0

	KnightReversalChance = 0.01
	KnightLineChance     = 0.3
	QueenLineChance      = 0.02
)

// Effect sizes and lifetimes.
const (
	MonsterHitRadius   = 20.0
	MonsterHitDuration = 150.0
	BossHitRadius      = 30.0
	BossHitDuration    = 200.0
	ExplosionRadius    = 100.0
	ExplosionDuration  = 500.0
)
