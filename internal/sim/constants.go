package sim

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// FPS is the fixed simulation rate; every per-frame constant below
	// assumes one Update call per 1/FPS seconds.
	FPS = 60

	PlayerWidth  = 50
	PlayerHeight = 50
	PlayerSpeed  = 5.0
	JumpVelocity = -15.0
	Gravity      = 0.8

	PlayerSpawnX = ScreenWidth / 2
	PlayerSpawnY = ScreenHeight - 60

	GroundY = ScreenHeight - 10

	BulletWidth  = 10
	BulletHeight = 5
	BulletSpeed  = 10.0

	EnemyWidth         = 40
	EnemyHeight        = 40
	EnemySpawnInterval = 120
	EnemySpawnRange    = 200

	EnemyBulletWidth   = 10
	EnemyBulletHeight  = 5
	EnemyBulletSpeed   = 5.0
	EnemyShootInterval = 90
)

// DefaultPlatforms are the three static ledges, lowest first. Grounding
// checks them in this order.
var DefaultPlatforms = []Rect{
	{X: 200, Y: 470, W: 100, H: 20},
	{X: 400, Y: 370, W: 100, H: 20},
	{X: 600, Y: 270, W: 100, H: 20},
}
