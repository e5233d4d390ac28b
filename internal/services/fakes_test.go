package services

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5"
)

// In-memory fakes for the store interfaces.

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	if f.users == nil {
		f.users = make(map[string]*models.User)
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserStore) UpdatePushToken(ctx context.Context, userID string, token *string) error {
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found")
	}
	u.PushToken = token
	return nil
}

type fakeProfileStore struct {
	profiles     map[string]*models.Profile // keyed by user ID
	photoUpdates []*string
}

func (f *fakeProfileStore) put(p *models.Profile) {
	if f.profiles == nil {
		f.profiles = make(map[string]*models.Profile)
	}
	f.profiles[p.UserID] = p
}

func (f *fakeProfileStore) Create(ctx context.Context, p *models.Profile) error {
	f.put(p)
	return nil
}

func (f *fakeProfileStore) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile not found")
	}
	return p, nil
}

func (f *fakeProfileStore) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile not found")
}

func (f *fakeProfileStore) Update(ctx context.Context, p *models.Profile) error {
	existing, ok := f.profiles[p.UserID]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	existing.FullName = p.FullName
	existing.Age = p.Age
	existing.Gender = p.Gender
	existing.Religion = p.Religion
	existing.Location = p.Location
	existing.Phone = p.Phone
	existing.Bio = p.Bio
	return nil
}

func (f *fakeProfileStore) UpdatePhoto(ctx context.Context, userID string, photoURL *string) error {
	p, ok := f.profiles[userID]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	p.ProfilePhoto = photoURL
	f.photoUpdates = append(f.photoUpdates, photoURL)
	return nil
}

func (f *fakeProfileStore) ListBrowsable(ctx context.Context, excludeUserID string) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, p := range f.profiles {
		if p.UserID != excludeUserID && p.IsApproved && !p.IsDisabled {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileStore) ListAll(ctx context.Context) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileStore) SetApproved(ctx context.Context, id string, approved bool) error {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.IsApproved = approved
	return nil
}

func (f *fakeProfileStore) SetDisabled(ctx context.Context, id string, disabled bool) error {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.IsDisabled = disabled
	return nil
}

type fakePreferenceStore struct {
	prefs   map[string]*models.Preferences
	creates int
	updates int
}

func (f *fakePreferenceStore) GetByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	p, ok := f.prefs[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakePreferenceStore) Create(ctx context.Context, p *models.Preferences) error {
	if f.prefs == nil {
		f.prefs = make(map[string]*models.Preferences)
	}
	f.prefs[p.UserID] = p
	f.creates++
	return nil
}

func (f *fakePreferenceStore) Update(ctx context.Context, p *models.Preferences) error {
	existing, ok := f.prefs[p.UserID]
	if !ok {
		return fmt.Errorf("preferences not found")
	}
	existing.MinAge = p.MinAge
	existing.MaxAge = p.MaxAge
	existing.PreferredReligion = p.PreferredReligion
	existing.PreferredLocation = p.PreferredLocation
	existing.AdditionalPreferences = p.AdditionalPreferences
	f.updates++
	return nil
}

type fakeInterestStore struct {
	interests []*models.MatchInterest
	createErr error
}

func (f *fakeInterestStore) Create(ctx context.Context, in *models.MatchInterest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.interests = append(f.interests, in)
	return nil
}

func (f *fakeInterestStore) GetByID(ctx context.Context, id string) (*models.MatchInterest, error) {
	for _, in := range f.interests {
		if in.ID == id {
			return in, nil
		}
	}
	return nil, fmt.Errorf("match interest not found")
}

func (f *fakeInterestStore) ListSent(ctx context.Context, userID string) ([]*models.MatchInterest, error) {
	var out []*models.MatchInterest
	for _, in := range f.interests {
		if in.FromUserID == userID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeInterestStore) ListReceived(ctx context.Context, userID string) ([]*models.ReceivedInterest, error) {
	var out []*models.ReceivedInterest
	for _, in := range f.interests {
		if in.ToUserID == userID {
			out = append(out, &models.ReceivedInterest{MatchInterest: *in})
		}
	}
	return out, nil
}

func (f *fakeInterestStore) UpdateStatus(ctx context.Context, id, status string) error {
	in, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	in.Status = status
	return nil
}

type fakeNotificationStore struct {
	notifications []*models.Notification
	emailed       []string
	createErr     error
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationStore) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(ctx context.Context, id, userID string) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification not found")
}

func (f *fakeNotificationStore) MarkEmailed(ctx context.Context, id string) error {
	f.emailed = append(f.emailed, id)
	return nil
}

type fakeMembershipStore struct {
	tiers       map[string]*models.MembershipTier
	memberships []*models.UserMembership
	createErr   error
}

func (f *fakeMembershipStore) ListActiveTiers(ctx context.Context) ([]*models.MembershipTier, error) {
	var out []*models.MembershipTier
	for _, t := range f.tiers {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeMembershipStore) GetTierByID(ctx context.Context, id string) (*models.MembershipTier, error) {
	t, ok := f.tiers[id]
	if !ok {
		return nil, fmt.Errorf("membership tier not found")
	}
	return t, nil
}

func (f *fakeMembershipStore) GetCurrent(ctx context.Context, userID string) (*models.UserMembership, error) {
	var current *models.UserMembership
	for _, m := range f.memberships {
		if m.UserID == userID && m.IsActive {
			if current == nil || m.ExpiresAt.After(current.ExpiresAt) {
				current = m
			}
		}
	}
	if current == nil {
		return nil, pgx.ErrNoRows
	}
	return current, nil
}

func (f *fakeMembershipStore) CreateExclusive(ctx context.Context, m *models.UserMembership) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.memberships {
		if existing.UserID == m.UserID {
			existing.IsActive = false
		}
	}
	f.memberships = append(f.memberships, m)
	return nil
}

type fakeContactStore struct {
	messages  []*models.ContactMessage
	createErr error
}

func (f *fakeContactStore) Create(ctx context.Context, m *models.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeContactStore) ListAll(ctx context.Context) ([]*models.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeContactStore) MarkRead(ctx context.Context, id string) error {
	for _, m := range f.messages {
		if m.ID == id {
			m.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("contact message not found")
}

type fakeRoleStore struct {
	roles map[string][]string
}

func (f *fakeRoleStore) Create(ctx context.Context, role *models.UserRole) error {
	if f.roles == nil {
		f.roles = make(map[string][]string)
	}
	f.roles[role.UserID] = append(f.roles[role.UserID], role.Role)
	return nil
}

func (f *fakeRoleStore) ListByUser(ctx context.Context, userID string) ([]string, error) {
	return f.roles[userID], nil
}

func (f *fakeRoleStore) HasAnyRole(ctx context.Context, userID string, roles ...string) (bool, error) {
	for _, held := range f.roles[userID] {
		for _, want := range roles {
			if held == want {
				return true, nil
			}
		}
	}
	return false, nil
}

type dispatchCall struct {
	notification *models.Notification
	email        *EmailRequest
}

type fakeDispatcher struct {
	calls []dispatchCall
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, n *models.Notification, email *EmailRequest) {
	f.calls = append(f.calls, dispatchCall{notification: n, email: email})
}

type fakeMailer struct {
	sent    []EmailRequest
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, req EmailRequest) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, req)
	return nil
}

type fakePushSender struct {
	pushed  []string
	pushErr error
}

func (f *fakePushSender) Push(ctx context.Context, deviceToken, title, body string) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushed = append(f.pushed, deviceToken)
	return nil
}

type fakeObjectStore struct {
	puts    []string
	deletes []string
	putErr  error
}

func (f *fakeObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.puts = append(f.puts, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}
