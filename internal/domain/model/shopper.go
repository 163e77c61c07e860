package model

// 購入者の識別。Guest か AuthenticatedUser のどちらか。
type Shopper interface {
	isShopper()
}

// 未ログインの購入者
type Guest struct{}

func (Guest) isShopper() {}

// ログイン済みの購入者
type AuthenticatedUser struct {
	ID string
}

func (AuthenticatedUser) isShopper() {}

// ログイン済みならユーザーIDを返す
func UserID(s Shopper) (string, bool) {
	u, ok := s.(AuthenticatedUser)
	if !ok || u.ID == "" {
		return "", false
	}
	return u.ID, true
}
