// Package storetest provides in-memory stores for tests.
package storetest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"unilocal/internal/domain/passwordreset"
	"unilocal/internal/domain/places"
	"unilocal/internal/domain/reviews"
	"unilocal/internal/domain/users"
)

var ErrStoreDown = errors.New("store unavailable")

type Places struct {
	ByID         map[int64]*places.Place
	nextID       int64
	ListErr      error
	GetErr       error
	UpdateErr    error
	RatingWrites map[int64][]float64
	Deleted      []int64
}

func NewPlaces(list ...*places.Place) *Places {
	f := &Places{ByID: map[int64]*places.Place{}, RatingWrites: map[int64][]float64{}, nextID: 100}
	for _, p := range list {
		f.ByID[p.ID] = p
		if p.ID > f.nextID {
			f.nextID = p.ID
		}
	}
	return f
}

func (f *Places) Create(_ context.Context, p *places.Place) error {
	f.nextID++
	p.ID = f.nextID
	p.Status = places.StatusPending
	p.CreatedAt = time.Now()
	cp := *p
	f.ByID[p.ID] = &cp
	return nil
}

func (f *Places) GetByID(_ context.Context, id int64) (*places.Place, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	p, ok := f.ByID[id]
	if !ok {
		return nil, places.ErrPlaceNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *Places) GetByIDs(_ context.Context, ids []int64) ([]places.Place, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := []places.Place{}
	for _, id := range ids {
		if p, ok := f.ByID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *Places) filter(keep func(*places.Place) bool) ([]places.Place, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := []places.Place{}
	for id := int64(0); id <= f.nextID; id++ {
		if p, ok := f.ByID[id]; ok && keep(p) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *Places) ListByStatus(_ context.Context, status places.Status) ([]places.Place, error) {
	return f.filter(func(p *places.Place) bool { return p.Status == status })
}

func (f *Places) ListApprovedByModerator(_ context.Context, moderatorID int64) ([]places.Place, error) {
	return f.filter(func(p *places.Place) bool {
		return p.Status == places.StatusApproved && p.ModeratorID != nil && *p.ModeratorID == moderatorID
	})
}

func (f *Places) ListByCreator(_ context.Context, userID int64) ([]places.Place, error) {
	return f.filter(func(p *places.Place) bool { return p.CreatedBy == userID })
}

func (f *Places) Search(_ context.Context, sf places.SearchFilter) ([]places.Place, error) {
	return f.filter(func(p *places.Place) bool {
		if p.Status != places.StatusApproved {
			return false
		}
		if sf.Category != nil && p.Category != *sf.Category {
			return false
		}
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(sf.Query))
	})
}

func (f *Places) SetStatus(_ context.Context, id int64, status places.Status, moderatorID int64) error {
	p, ok := f.ByID[id]
	if !ok {
		return places.ErrPlaceNotFound
	}
	p.Status = status
	p.ModeratorID = &moderatorID
	return nil
}

func (f *Places) UpdateAverageRating(_ context.Context, id int64, avg float64) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	p, ok := f.ByID[id]
	if !ok {
		return places.ErrPlaceNotFound
	}
	p.AverageRating = avg
	f.RatingWrites[id] = append(f.RatingWrites[id], avg)
	return nil
}

func (f *Places) AddPhotoURL(_ context.Context, id int64, url string) error {
	p, ok := f.ByID[id]
	if !ok {
		return places.ErrPlaceNotFound
	}
	p.ImageURLs = append(p.ImageURLs, url)
	return nil
}

func (f *Places) Delete(_ context.Context, id int64) error {
	if _, ok := f.ByID[id]; !ok {
		return places.ErrPlaceNotFound
	}
	delete(f.ByID, id)
	f.Deleted = append(f.Deleted, id)
	return nil
}

type Reviews struct {
	ByID    map[int64]*reviews.Review
	nextID  int64
	ListErr error
}

func NewReviews(list ...*reviews.Review) *Reviews {
	f := &Reviews{ByID: map[int64]*reviews.Review{}}
	for _, r := range list {
		f.ByID[r.ID] = r
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *Reviews) Create(_ context.Context, r *reviews.Review) error {
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = time.Now()
	cp := *r
	f.ByID[r.ID] = &cp
	return nil
}

func (f *Reviews) GetByID(_ context.Context, id int64) (*reviews.Review, error) {
	r, ok := f.ByID[id]
	if !ok {
		return nil, reviews.ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *Reviews) ListByPlace(_ context.Context, placeID int64) ([]reviews.Review, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := []reviews.Review{}
	for id := f.nextID; id > 0; id-- {
		if r, ok := f.ByID[id]; ok && r.PlaceID == placeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *Reviews) SetReply(_ context.Context, id int64, reply string) error {
	r, ok := f.ByID[id]
	if !ok {
		return reviews.ErrReviewNotFound
	}
	if r.Reply != "" {
		return reviews.ErrReplyAlreadySet
	}
	r.Reply = reply
	return nil
}

type Users struct {
	ByID           map[int64]*users.User
	Refresh        map[int64]string
	nextID         int64
	RevokedRefresh []int64
}

func NewUsers(list ...*users.User) *Users {
	f := &Users{ByID: map[int64]*users.User{}, Refresh: map[int64]string{}}
	for _, u := range list {
		f.ByID[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *Users) Create(_ context.Context, u *users.User) error {
	for _, existing := range f.ByID {
		if existing.Email == u.Email {
			return users.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return users.ErrDuplicateUsername
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.Favorites = []int64{}
	f.ByID[u.ID] = u
	return nil
}

func (f *Users) GetByID(_ context.Context, id int64) (*users.User, error) {
	u, ok := f.ByID[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	return u, nil
}

func (f *Users) GetByEmail(_ context.Context, email string) (*users.User, error) {
	for _, u := range f.ByID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, users.ErrNotFound
}

func (f *Users) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.ByID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *Users) UpdateUser(_ context.Context, id int64, updates map[string]any) error {
	u, ok := f.ByID[id]
	if !ok {
		return users.ErrNotFound
	}
	for field, v := range updates {
		switch field {
		case "name":
			u.Name = v.(string)
		case "username":
			u.Username = v.(string)
		case "city":
			u.City = v.(string)
		default:
			return fmt.Errorf("invalid field name: %s", field)
		}
	}
	return nil
}

func (f *Users) UpdatePassword(_ context.Context, u *users.User) error {
	if _, ok := f.ByID[u.ID]; !ok {
		return users.ErrNotFound
	}
	f.ByID[u.ID] = u
	return nil
}

func (f *Users) SaveRefreshToken(_ context.Context, id int64, token string) error {
	f.Refresh[id] = token
	return nil
}

func (f *Users) GetRefreshToken(_ context.Context, id int64) (string, error) {
	if _, ok := f.ByID[id]; !ok {
		return "", users.ErrNotFound
	}
	return f.Refresh[id], nil
}

func (f *Users) DeleteRefreshToken(_ context.Context, id int64) error {
	delete(f.Refresh, id)
	f.RevokedRefresh = append(f.RevokedRefresh, id)
	return nil
}

func (f *Users) AddFavorite(_ context.Context, userID, placeID int64) error {
	u, ok := f.ByID[userID]
	if !ok {
		return users.ErrNotFound
	}
	if !u.HasFavorite(placeID) {
		u.Favorites = append(u.Favorites, placeID)
	}
	return nil
}

func (f *Users) RemoveFavorite(_ context.Context, userID, placeID int64) error {
	u, ok := f.ByID[userID]
	if !ok {
		return users.ErrNotFound
	}
	kept := []int64{}
	for _, id := range u.Favorites {
		if id != placeID {
			kept = append(kept, id)
		}
	}
	u.Favorites = kept
	return nil
}

type ResetTokens struct {
	Tokens map[string]int64
}

func (f *ResetTokens) Save(_ context.Context, token string, userID int64, _ time.Duration) error {
	if f.Tokens == nil {
		f.Tokens = map[string]int64{}
	}
	f.Tokens[token] = userID
	return nil
}

func (f *ResetTokens) Consume(_ context.Context, token string) (int64, error) {
	id, ok := f.Tokens[token]
	if !ok {
		return 0, passwordreset.ErrTokenNotFound
	}
	delete(f.Tokens, token)
	return id, nil
}

type SentMail struct {
	Template string
	Username string
	Email    string
	Data     any
}

type Mailer struct {
	Sent []SentMail
	Err  error
}

func (f *Mailer) Send(templateFile, username, email string, data any) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, SentMail{templateFile, username, email, data})
	return nil
}

type Images struct {
	Uploaded  []string
	Deleted   []string
	FailAfter int
}

func (f *Images) Upload(_ context.Context, r io.Reader, _ int64, _ string) (string, error) {
	if f.FailAfter > 0 && len(f.Uploaded) >= f.FailAfter {
		return "", errors.New("upload failed")
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://img.test/imagenes/%d.jpg", len(f.Uploaded)+1)
	f.Uploaded = append(f.Uploaded, url)
	return url, nil
}

func (f *Images) Delete(_ context.Context, url string) error {
	f.Deleted = append(f.Deleted, url)
	return nil
}

type Notifier struct {
	Decided []places.Place
	Err     error
}

func (f *Notifier) PlaceDecided(_ context.Context, p *places.Place) error {
	f.Decided = append(f.Decided, *p)
	return f.Err
}

type PushTokens struct {
	ByUser map[int64][]string
	Pruned []time.Duration
}

func NewPushTokens() *PushTokens {
	return &PushTokens{ByUser: map[int64][]string{}}
}

func (f *PushTokens) Upsert(_ context.Context, userID int64, token string, _ json.RawMessage) error {
	for _, t := range f.ByUser[userID] {
		if t == token {
			return nil
		}
	}
	f.ByUser[userID] = append(f.ByUser[userID], token)
	return nil
}

func (f *PushTokens) Remove(_ context.Context, userID int64, token string) error {
	kept := []string{}
	for _, t := range f.ByUser[userID] {
		if t != token {
			kept = append(kept, t)
		}
	}
	f.ByUser[userID] = kept
	return nil
}

func (f *PushTokens) RemoveTokens(ctx context.Context, tokens []string) error {
	for userID := range f.ByUser {
		for _, t := range tokens {
			_ = f.Remove(ctx, userID, t)
		}
	}
	return nil
}

func (f *PushTokens) ListByUser(_ context.Context, userID int64) ([]string, error) {
	return append([]string{}, f.ByUser[userID]...), nil
}

func (f *PushTokens) PruneStale(_ context.Context, olderThan time.Duration) (int64, error) {
	f.Pruned = append(f.Pruned, olderThan)
	return 0, nil
}
