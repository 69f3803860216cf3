package service

import "errors"

// 统一的业务错误，handler 层按这里的哨兵映射 HTTP 状态码：
// ErrInvalidParams -> 400, 冲突类 -> 409, ErrAccessDenied -> 403,
// NotFound 类 -> 404，其余 -> 500
var (
	ErrInvalidParams = errors.New("invalid params")

	ErrAccessDenied = errors.New("access denied")

	ErrUserNotFound         = errors.New("user not found")
	ErrClubNotFound         = errors.New("club not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrContributionNotFound = errors.New("contribution not found")

	ErrEmailTaken        = errors.New("email already registered")
	ErrAlreadyMember     = errors.New("already a member of this club")
	ErrNotMember         = errors.New("not a member of this club")
	ErrOwnerCannotLeave  = errors.New("club owner cannot leave the club")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrAlreadyPaid       = errors.New("payment already recorded for this attendee")
	ErrContributionPaid  = errors.New("contribution already paid")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
