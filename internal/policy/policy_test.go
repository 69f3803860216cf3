package policy

import (
	"testing"

	"Club_Manager/internal/model"
)

func TestCanManageClub(t *testing.T) {
	club := &model.Club{ID: 1, OwnerID: 10}

	owner := Actor{ID: 10, Role: model.RoleOrganizer}
	admin := Actor{ID: 99, Role: model.RoleAdmin}
	stranger := Actor{ID: 20, Role: model.RoleMember}

	if !CanManageClub(owner, club) {
		t.Error("owner should manage own club")
	}
	if !CanManageClub(admin, club) {
		t.Error("admin should manage any club")
	}
	if CanManageClub(stranger, club) {
		t.Error("non-owner member must not manage club")
	}
}

func TestCanAccessClub(t *testing.T) {
	club := &model.Club{ID: 1, OwnerID: 10}
	member := Actor{ID: 20, Role: model.RoleMember}

	if !CanAccessClub(member, club, true) {
		t.Error("member should access club")
	}
	if CanAccessClub(member, club, false) {
		t.Error("non-member should not access club")
	}
	if !CanAccessClub(Actor{ID: 99, Role: model.RoleAdmin}, club, false) {
		t.Error("admin should access any club")
	}
}

func TestCanModerateUsers(t *testing.T) {
	if !CanModerateUsers(Actor{ID: 1, Role: model.RoleAdmin}) {
		t.Error("admin should moderate users")
	}
	if CanModerateUsers(Actor{ID: 2, Role: model.RoleOrganizer}) {
		t.Error("organizer must not moderate users")
	}
}
