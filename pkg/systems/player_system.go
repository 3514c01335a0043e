package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/utils"
)

const (
	// 手臂在非瞄准状态下的俯仰角（度）
	armRestPitch = 45
	// 射线穿过自身刚体后继续检测的步进距离
	selfHitSkip = 0.01
)

// PlayerSystem 玩家控制器
//
// 每帧调用顺序：
//   - UpdateInput（可变步长）：采样移动、朝向、跳跃、开火、视角
//   - UpdateMovement（固定步长）：平滑输入并写入刚体速度
//   - UpdateCamera（帧末）：镜头旋转、跟随、缩放
//   - UpdateUI（帧末）：推送 HUD
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	playerID      ecs.EntityID
	config        *config.PlayerConfig
	controls      *game.ControlSettings
	world         game.PhysicsWorld
	combat        *CombatSystem
	hud           game.HUD
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - playerID: 玩家实体
//   - cfg: 玩家配置
//   - controls: 操作偏好，nil 使用默认值
//   - world: 物理世界（开火射线检测）
//   - combat: 战斗系统（对僵尸结算伤害）
//   - hud: UI 接收端
func NewPlayerSystem(em *ecs.EntityManager, playerID ecs.EntityID, cfg *config.PlayerConfig, controls *game.ControlSettings,
	world game.PhysicsWorld, combat *CombatSystem, hud game.HUD) *PlayerSystem {
	if controls == nil {
		controls = game.DefaultControlSettings()
	}
	if hud == nil {
		hud = game.NopHUD{}
	}
	return &PlayerSystem{
		entityManager: em,
		playerID:      playerID,
		config:        cfg,
		controls:      controls,
		world:         world,
		combat:        combat,
		hud:           hud,
	}
}

// PlayerID 返回玩家实体
func (s *PlayerSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// IsAlive 玩家是否存活
func (s *PlayerSystem) IsAlive() bool {
	return s.combat.IsAlive(s.playerID)
}

// Position 玩家刚体位置（脚下）
func (s *PlayerSystem) Position() mgl64.Vec3 {
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, s.playerID); ok {
		return body.Body.Position()
	}
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.playerID); ok {
		return transform.Position
	}
	return mgl64.Vec3{}
}

// AddHealth 为玩家回血，已满或已死亡时返回 false
func (s *PlayerSystem) AddHealth(amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID)
	if !ok {
		return false
	}
	return health.Add(amount)
}

// AddAmmo 为玩家补充弹药，已满或已死亡时返回 false
func (s *PlayerSystem) AddAmmo(amount int) bool {
	ammo, ok := ecs.GetComponent[*components.AmmoComponent](s.entityManager, s.playerID)
	if !ok {
		return false
	}
	return ammo.Add(amount, s.IsAlive())
}

// UpdateInput 处理一帧的输入
func (s *PlayerSystem) UpdateInput(deltaTime float64, input game.InputSnapshot) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	rig, ok := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	// 移动与战斗输入需要存活
	if s.IsAlive() {
		var local mgl64.Vec3
		if input.Forward {
			local = local.Add(utils.Forward)
		}
		if input.Back {
			local = local.Sub(utils.Forward)
		}
		if input.Right {
			local = local.Add(utils.Right)
		}
		if input.Left {
			local = local.Sub(utils.Right)
		}

		// 相对镜头的水平方向
		move := utils.SafeNormalize(utils.Flatten(rig.SlotRotation.Rotate(local)))
		if input.Sprint {
			move = move.Mul(s.config.SprintModifier)
		}
		player.InputVec = move

		// 瞄准时模型转向镜头方向，移动时转向移动方向
		if player.Aiming {
			flatCamera := utils.YawRotation(utils.FlatYaw(rig.SlotRotation))
			player.MeshRotation = utils.Slerp(player.MeshRotation, flatCamera, deltaTime*s.config.AimTurnSpeed)
		} else if move.Len() > utils.Epsilon {
			player.MeshRotation = utils.Slerp(player.MeshRotation, utils.LookRotation(move), deltaTime*s.config.TurnSpeed)
		}

		// 跳跃请求留给物理步消费
		if input.JumpPressed && player.Grounded && !player.Aiming {
			player.ShouldJump = true
		}

		// 开火使用上一帧的瞄准状态
		if player.Aiming && input.FirePressed {
			s.fire(player, rig)
		}

		player.Aiming = input.Aim
	}

	// 视角在死亡后仍然可用
	sensitivity := 1.0
	if player.Aiming {
		sensitivity = s.controls.AimSensModifier
	}
	player.CameraYaw += input.MouseDX * s.controls.MouseSensitivityX * sensitivity
	player.CameraPitch += input.MouseDY * s.controls.MouseSensitivityY * sensitivity
	player.CameraPitch = utils.Clamp(player.CameraPitch, -s.config.MaxPitch, -s.config.MinPitch)

	armTarget := float64(armRestPitch)
	if player.Aiming {
		armTarget = -player.CameraPitch
	}
	player.ArmPitch = utils.Lerp(player.ArmPitch, armTarget, deltaTime/s.config.ZoomDuration)

	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.playerID); ok {
		transform.Rotation = player.MeshRotation
	}
}

// fire 从镜头中心向前开火
func (s *PlayerSystem) fire(player *components.PlayerComponent, rig *components.CameraRigComponent) {
	ammo, ok := ecs.GetComponent[*components.AmmoComponent](s.entityManager, s.playerID)
	if !ok || ammo.Current <= 0 {
		return
	}

	origin := s.Position()
	camPos, dir := rig.CameraPosition(), rig.CameraForward()
	hit, ok := s.world.Raycast(camPos, dir, s.config.GunRange)
	// 射线先碰到自己的身体时，从身体内部继续检测
	if ok && hit.Entity == s.playerID {
		travelled := hit.Point.Sub(camPos).Len()
		hit, ok = s.world.Raycast(hit.Point.Add(dir.Mul(selfHitSkip)), dir, s.config.GunRange-travelled)
	}
	if ok {
		hitZombie := hit.Entity != 0 && ecs.HasComponent[*components.ZombieComponent](s.entityManager, hit.Entity)

		if hitZombie && s.combat.IsAlive(hit.Entity) {
			s.combat.ApplyHit(hit.Entity, s.config.GunDamage, hit.Point, origin)
		} else if hit.Body != nil {
			// 刚体（包括已死亡的僵尸）被击飞
			force := utils.SafeNormalize(hit.Point.Sub(origin)).Mul(s.config.GunForce)
			hit.Body.AddForceAtPosition(force, hit.Point)
		}

		entities.NewHitEffectEntity(s.entityManager, hit.Point, hitZombie, s.config.HitEffectLifetime)
	}

	ammo.Consume()
}

// UpdateMovement 固定步长移动积分
// 只读取上一次输入采样的结果
func (s *PlayerSystem) UpdateMovement(fixedStep float64) {
	if !s.IsAlive() {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	body := bodyComp.Body

	// 平滑输入，得到加速/减速效果
	player.CurrentInputVec = utils.LerpVec3(player.CurrentInputVec, player.InputVec, s.config.Acceleration*fixedStep)

	speed := s.config.MovementSpeed
	if player.Aiming {
		speed *= s.config.AimSpeedModifier
	}
	inputVelocity := player.CurrentInputVec.Mul(speed)

	velocity := body.Velocity()
	if player.Grounded {
		// 地面上完全控制水平速度
		velocity[0] = inputVelocity.X()
		velocity[2] = inputVelocity.Z()
	} else if player.InputVec.Len() > utils.Epsilon && s.config.AirControl > utils.Epsilon {
		// 空中只按比例修正
		velocity[0] = utils.Lerp(velocity.X(), inputVelocity.X(), s.config.AirControl)
		velocity[2] = utils.Lerp(velocity.Z(), inputVelocity.Z(), s.config.AirControl)
	}
	body.SetVelocity(velocity)

	if player.ShouldJump {
		body.SetVelocity(body.Velocity().Add(utils.Up.Mul(s.config.JumpSpeed)))
		player.ShouldJump = false
		player.Grounded = false
	}
}

// UpdateCamera 帧末更新镜头
func (s *PlayerSystem) UpdateCamera(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	rig, ok := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	pitch := player.CameraPitch
	if s.controls.FlipMouseY {
		pitch = -pitch
	}
	target := utils.YawPitchRotation(player.CameraYaw, pitch)

	// 瞄准时不做平滑以保证精度
	if player.Aiming {
		rig.SlotRotation = target
	} else {
		rig.SlotRotation = utils.Slerp(rig.SlotRotation, target, deltaTime/s.config.CameraRotSmoothing)
	}

	drag := s.config.CameraDrag
	if player.Aiming {
		drag = s.config.CameraDragZoomed
	}
	follow := s.Position().Add(s.config.CameraFollowOffset.Vec())
	rig.CurrentSlotPosition = utils.LerpVec3(rig.CurrentSlotPosition, follow, deltaTime/drag)

	// 死亡后镜头停留在死亡位置
	if rig.Detached {
		rig.SlotPosition = rig.DeathCamPos
	} else {
		rig.SlotPosition = rig.CurrentSlotPosition
	}

	offset, fov := s.config.FreelookOffset.Vec(), s.config.FOVNormal
	if player.Aiming {
		offset, fov = s.config.AimOffset.Vec(), s.config.FOVZoomed
	}
	rig.CameraOffset = utils.LerpVec3(rig.CameraOffset, offset, deltaTime/s.config.ZoomDuration)
	rig.FOV = utils.Lerp(rig.FOV, fov, deltaTime/s.config.ZoomDuration)
}

// UpdateUI 推送 HUD 数值
func (s *PlayerSystem) UpdateUI() {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		s.hud.SetShowCrosshair(player.Aiming)
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID); ok {
		s.hud.SetHealth(health.Normalized())
	}
	if ammo, ok := ecs.GetComponent[*components.AmmoComponent](s.entityManager, s.playerID); ok {
		s.hud.SetAmmo(ammo.Normalized())
	}
}

// OnEntityDied 玩家死亡边沿
func (s *PlayerSystem) OnEntityDied(event DeathEvent) {
	if event.Entity != s.playerID {
		return
	}

	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		player.Aiming = false
		player.InputVec = mgl64.Vec3{}
		player.CurrentInputVec = mgl64.Vec3{}
	}

	if body, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, s.playerID); ok {
		body.Body.SetRotationLocked(false)
		body.Body.AddForceAtPosition(event.Impulse, event.Point)
	}

	if rig, ok := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, s.playerID); ok {
		rig.DeathCamPos = rig.SlotPosition
		rig.Detached = true
	}

	log.Printf("[PlayerSystem] Player died")
	s.hud.PlayerDied()
}
