// Package policy 集中所有“群主或管理员”之类的权限判断，
// 各个 handler 不再各写一遍
package policy

import "Club_Manager/internal/model"

// Actor 当前请求用户，信息来自 JWT claims
type Actor struct {
	ID   uint64
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// CanManageClub 写操作：管理员或者俱乐部所有者
func CanManageClub(a Actor, club *model.Club) bool {
	return a.IsAdmin() || a.ID == club.OwnerID
}

// CanAccessClub 读操作：成员同样可以看（成员列表、活动、时间表）
func CanAccessClub(a Actor, club *model.Club, isMember bool) bool {
	return CanManageClub(a, club) || isMember
}

// CanModerateUsers 用户列表和改角色只有管理员可以
func CanModerateUsers(a Actor) bool {
	return a.IsAdmin()
}
