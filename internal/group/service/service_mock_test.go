package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks GroupStore,MembershipStore,JoinRequestStore,ContentStore,UserDirectory,AuditPublisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cineclub/internal/group/models"
	"cineclub/internal/group/service/mocks"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	"cineclub/pkg/platform/sentinel"
)

type mockDeps struct {
	groups   *mocks.MockGroupStore
	members  *mocks.MockMembershipStore
	requests *mocks.MockJoinRequestStore
	content  *mocks.MockContentStore
	users    *mocks.MockUserDirectory
	audit    *mocks.MockAuditPublisher
}

func newMockService(t *testing.T) (*Service, mockDeps) {
	ctrl := gomock.NewController(t)
	d := mockDeps{
		groups:   mocks.NewMockGroupStore(ctrl),
		members:  mocks.NewMockMembershipStore(ctrl),
		requests: mocks.NewMockJoinRequestStore(ctrl),
		content:  mocks.NewMockContentStore(ctrl),
		users:    mocks.NewMockUserDirectory(ctrl),
		audit:    mocks.NewMockAuditPublisher(ctrl),
	}
	svc := New(d.groups, d.members, d.requests, d.content,
		WithUserDirectory(d.users),
		WithAuditPublisher(d.audit),
	)
	return svc, d
}

func ownedGroup(owner id.UserID) *models.Group {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Group{ID: id.NewGroupID(), Name: "g", OwnerID: owner, CreatedAt: now, UpdatedAt: now}
}

func TestRequestToJoinLostRaceIsConflict(t *testing.T) {
	svc, d := newMockService(t)
	ctx := context.Background()
	user := id.NewUserID()
	g := ownedGroup(id.NewUserID())

	d.groups.EXPECT().FindGroup(gomock.Any(), g.ID).Return(g, nil)
	d.members.EXPECT().FindMember(gomock.Any(), g.ID, user).Return(nil, sentinel.ErrNotFound)
	d.requests.EXPECT().FindPendingJoinRequest(gomock.Any(), g.ID, user).Return(nil, sentinel.ErrNotFound)
	d.requests.EXPECT().CreateJoinRequest(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict)

	_, err := svc.RequestToJoin(ctx, user, g.ID)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeConflict, dErrors.CodeOf(err))
}

func TestApproveLostRaceIsInvalidState(t *testing.T) {
	svc, d := newMockService(t)
	ctx := context.Background()
	owner := id.NewUserID()
	g := ownedGroup(owner)
	req, err := models.NewJoinRequest(id.NewJoinRequestID(), g.ID, id.NewUserID(), time.Now())
	require.NoError(t, err)

	d.groups.EXPECT().FindGroup(gomock.Any(), g.ID).Return(g, nil)
	d.requests.EXPECT().FindJoinRequest(gomock.Any(), req.ID).Return(req, nil)
	d.requests.EXPECT().ResolveJoinRequest(gomock.Any(), gomock.Any()).Return(sentinel.ErrInvalidState)
	d.members.EXPECT().AddMemberIfAbsent(gomock.Any(), gomock.Any()).Times(0)

	_, err = svc.ApproveRequest(ctx, owner, g.ID, req.ID)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidState, dErrors.CodeOf(err))
}

func TestApproveToleratesExistingMembership(t *testing.T) {
	svc, d := newMockService(t)
	ctx := context.Background()
	owner := id.NewUserID()
	g := ownedGroup(owner)
	req, err := models.NewJoinRequest(id.NewJoinRequestID(), g.ID, id.NewUserID(), time.Now())
	require.NoError(t, err)

	d.groups.EXPECT().FindGroup(gomock.Any(), g.ID).Return(g, nil)
	d.requests.EXPECT().FindJoinRequest(gomock.Any(), req.ID).Return(req, nil)
	d.requests.EXPECT().ResolveJoinRequest(gomock.Any(), gomock.Any()).Return(nil)
	d.members.EXPECT().AddMemberIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Membership) (bool, error) {
			assert.Equal(t, req.UserID, m.UserID)
			assert.Equal(t, models.RoleMember, m.Role)
			return false, nil
		})
	d.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Event) error {
			assert.Equal(t, string(audit.EventJoinApproved), e.Action)
			assert.Equal(t, owner, e.UserID)
			return nil
		})

	resolved, err := svc.ApproveRequest(ctx, owner, g.ID, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestApproved, resolved.Status)
}

func TestStoreFailuresAreInternal(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("find group", func(t *testing.T) {
		svc, d := newMockService(t)
		d.groups.EXPECT().FindGroup(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.GetGroupDetails(context.Background(), id.UserID{}, id.NewGroupID())
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(err))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("create group", func(t *testing.T) {
		svc, d := newMockService(t)
		d.groups.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(boom)
		d.members.EXPECT().AddMember(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateGroup(context.Background(), id.NewUserID(), models.CreateGroupInput{Name: "x"})
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(err))
	})

	t.Run("count groups", func(t *testing.T) {
		svc, d := newMockService(t)
		d.groups.EXPECT().CountGroups(gomock.Any()).Return(0, boom)

		_, err := svc.ListGroups(context.Background(), id.UserID{}, models.Page{})
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(err))
	})
}

func TestAuditFailureDoesNotFailOperation(t *testing.T) {
	svc, d := newMockService(t)
	owner := id.NewUserID()

	d.groups.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(nil)
	d.members.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil)
	d.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

	g, err := svc.CreateGroup(context.Background(), owner, models.CreateGroupInput{Name: "kept"})
	require.NoError(t, err)
	assert.Equal(t, owner, g.OwnerID)
}

func TestListGroupsBatchesDecoration(t *testing.T) {
	svc, d := newMockService(t)
	viewer := id.NewUserID()
	groups := []*models.Group{ownedGroup(viewer), ownedGroup(id.NewUserID()), ownedGroup(id.NewUserID())}
	ids := []id.GroupID{groups[0].ID, groups[1].ID, groups[2].ID}
	first := id.MovieID(42)

	d.groups.EXPECT().CountGroups(gomock.Any()).Return(3, nil)
	d.groups.EXPECT().ListGroups(gomock.Any(), 0, 20).Return(groups, nil)
	d.members.EXPECT().GroupStats(gomock.Any(), ids).Times(1).Return(map[id.GroupID]models.GroupStats{
		groups[0].ID: {MemberCount: 2, MovieCount: 1, FirstMovieID: &first},
		groups[1].ID: {MemberCount: 1},
	}, nil)
	d.members.EXPECT().ViewerRoles(gomock.Any(), viewer, ids).Times(1).Return(map[id.GroupID]models.Role{
		groups[0].ID: models.RoleOwner,
		groups[2].ID: models.RoleMember,
	}, nil)

	page, err := svc.ListGroups(context.Background(), viewer, models.Page{})
	require.NoError(t, err)
	require.Len(t, page.Groups, 3)

	assert.True(t, page.Groups[0].IsOwner)
	assert.Equal(t, 2, page.Groups[0].MemberCount)
	assert.Equal(t, &first, page.Groups[0].FirstMovieID)
	assert.False(t, page.Groups[1].IsMember)
	assert.True(t, page.Groups[2].IsMember)
	assert.False(t, page.Groups[2].IsOwner)
	assert.Equal(t, 0, page.Groups[2].MemberCount)
}

func TestListGroupsAnonymousSkipsViewerRoles(t *testing.T) {
	svc, d := newMockService(t)
	groups := []*models.Group{ownedGroup(id.NewUserID())}

	d.groups.EXPECT().CountGroups(gomock.Any()).Return(1, nil)
	d.groups.EXPECT().ListGroups(gomock.Any(), 20, 20).Return(groups, nil)
	d.members.EXPECT().GroupStats(gomock.Any(), gomock.Any()).Return(map[id.GroupID]models.GroupStats{}, nil)
	d.members.EXPECT().ViewerRoles(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	page, err := svc.ListGroups(context.Background(), id.UserID{}, models.Page{Page: 2, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.False(t, page.Groups[0].IsMember)
}

func TestGroupDetailsUsernames(t *testing.T) {
	owner, member := id.NewUserID(), id.NewUserID()
	g := ownedGroup(owner)
	memberships := []*models.Membership{
		models.NewOwnerMembership(g.ID, owner, g.CreatedAt),
		models.NewMemberMembership(g.ID, member, g.CreatedAt.Add(time.Hour)),
	}

	t.Run("resolved through directory", func(t *testing.T) {
		svc, d := newMockService(t)
		d.groups.EXPECT().FindGroup(gomock.Any(), g.ID).Return(g, nil)
		d.members.EXPECT().ListMembers(gomock.Any(), g.ID).Return(memberships, nil)
		d.members.EXPECT().GroupStats(gomock.Any(), []id.GroupID{g.ID}).Return(map[id.GroupID]models.GroupStats{g.ID: {MemberCount: 2}}, nil)
		d.users.EXPECT().UsernamesByID(gomock.Any(), []id.UserID{owner, member}).
			Return(map[id.UserID]string{owner: "alice", member: "bob"}, nil)

		details, err := svc.GetGroupDetails(context.Background(), id.UserID{}, g.ID)
		require.NoError(t, err)
		require.Len(t, details.Members, 2)
		assert.Equal(t, "alice", details.Members[0].Username)
		assert.Equal(t, "bob", details.Members[1].Username)
		assert.Nil(t, details.Content)
	})

	t.Run("directory failure leaves names blank", func(t *testing.T) {
		svc, d := newMockService(t)
		d.groups.EXPECT().FindGroup(gomock.Any(), g.ID).Return(g, nil)
		d.members.EXPECT().ListMembers(gomock.Any(), g.ID).Return(memberships, nil)
		d.members.EXPECT().GroupStats(gomock.Any(), gomock.Any()).Return(map[id.GroupID]models.GroupStats{}, nil)
		d.users.EXPECT().UsernamesByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		d.content.EXPECT().ListContent(gomock.Any(), g.ID).Return([]*models.GroupContent{}, nil)

		details, err := svc.GetGroupDetails(context.Background(), member, g.ID)
		require.NoError(t, err)
		assert.Empty(t, details.Members[1].Username)
		assert.True(t, details.IsMember)
		assert.NotNil(t, details.Content)
	})
}
