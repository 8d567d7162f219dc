package service

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	groupmetrics "cineclub/internal/group/metrics"
	"cineclub/internal/group/models"
	"cineclub/internal/group/store"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	auditmemory "cineclub/pkg/platform/audit/store/memory"
	"cineclub/pkg/requestcontext"
)

type GroupServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.InMemory
	audit   *auditmemory.InMemoryStore
	metrics *groupmetrics.Metrics
	logs    *bytes.Buffer
	service *Service
	now     time.Time

	owner    id.UserID
	member   id.UserID
	outsider id.UserID
}

func TestGroupServiceSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceSuite))
}

func (s *GroupServiceSuite) SetupTest() {
	s.now = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = store.NewInMemory()
	s.audit = auditmemory.NewInMemoryStore()
	s.metrics = groupmetrics.New(prometheus.NewRegistry())
	s.logs = &bytes.Buffer{}
	s.service = New(s.store, s.store, s.store, s.store,
		WithLogger(slog.New(slog.NewJSONHandler(s.logs, nil))),
		WithAuditPublisher(s.audit),
		WithMetrics(s.metrics),
	)
	s.owner, s.member, s.outsider = id.NewUserID(), id.NewUserID(), id.NewUserID()
}

func (s *GroupServiceSuite) at(d time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), s.now.Add(d))
}

func (s *GroupServiceSuite) createGroup(name string) *models.Group {
	g, err := s.service.CreateGroup(s.ctx, s.owner, models.CreateGroupInput{Name: name, Description: "about " + name})
	s.Require().NoError(err)
	return g
}

// addMember runs the full request/approve workflow for user.
func (s *GroupServiceSuite) addMember(g *models.Group, user id.UserID) {
	r, err := s.service.RequestToJoin(s.ctx, user, g.ID)
	s.Require().NoError(err)
	_, err = s.service.ApproveRequest(s.ctx, s.owner, g.ID, r.ID)
	s.Require().NoError(err)
}

func (s *GroupServiceSuite) assertCode(err error, code dErrors.Code) {
	s.T().Helper()
	s.Require().Error(err)
	s.Equal(code, dErrors.CodeOf(err), "message: %s", dErrors.MessageOf(err))
}

func (s *GroupServiceSuite) assertSingleOwnerRow(groupID id.GroupID, owner id.UserID) {
	s.T().Helper()
	members, err := s.store.ListMembers(context.Background(), groupID)
	s.Require().NoError(err)
	owners := 0
	for _, m := range members {
		if m.IsOwner() {
			owners++
			s.Equal(owner, m.UserID)
		}
	}
	s.Equal(1, owners)
}

// Scenario A: creating a group makes the creator its owner and only member.
func (s *GroupServiceSuite) TestCreateGroup() {
	s.Run("creator becomes owner member", func() {
		g := s.createGroup("  Noir Nights ")
		s.Equal("Noir Nights", g.Name)
		s.Equal(s.owner, g.OwnerID)
		s.Equal(s.now, g.CreatedAt)

		details, err := s.service.GetGroupDetails(s.ctx, s.owner, g.ID)
		s.Require().NoError(err)
		s.Equal(1, details.MemberCount)
		s.True(details.IsOwner)
		s.True(details.IsMember)
		s.Require().Len(details.Members, 1)
		s.Equal(models.RoleOwner, details.Members[0].Role)
		s.assertSingleOwnerRow(g.ID, s.owner)
	})

	s.Run("names need not be unique", func() {
		s.createGroup("Same")
		s.createGroup("Same")
	})

	s.Run("validation", func() {
		_, err := s.service.CreateGroup(s.ctx, s.owner, models.CreateGroupInput{Name: "   "})
		s.assertCode(err, dErrors.CodeValidation)

		_, err = s.service.CreateGroup(s.ctx, s.owner, models.CreateGroupInput{Name: strings.Repeat("n", 256)})
		s.assertCode(err, dErrors.CodeValidation)

		_, err = s.service.CreateGroup(s.ctx, s.owner, models.CreateGroupInput{Name: "ok", Description: strings.Repeat("d", 1001)})
		s.assertCode(err, dErrors.CodeValidation)
	})

	s.Run("requires principal", func() {
		_, err := s.service.CreateGroup(s.ctx, id.UserID{}, models.CreateGroupInput{Name: "anon"})
		s.assertCode(err, dErrors.CodeUnauthorized)
	})

	s.Run("records audit, log and metric", func() {
		events, err := s.audit.ListByUser(context.Background(), s.owner, 0)
		s.Require().NoError(err)
		s.NotEmpty(events)
		s.Equal(string(audit.EventGroupCreated), events[0].Action)
		s.Contains(s.logs.String(), `"log_type":"audit"`)
		s.GreaterOrEqual(promtestutil.ToFloat64(s.metrics.GroupsCreated), float64(3))
	})
}

func (s *GroupServiceSuite) TestUpdateGroup() {
	g := s.createGroup("Original")
	name := "Renamed"

	s.Run("missing group", func() {
		_, err := s.service.UpdateGroup(s.ctx, s.owner, id.NewGroupID(), models.UpdateGroupInput{Name: &name})
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("missing group wins over an empty update", func() {
		_, err := s.service.UpdateGroup(s.ctx, s.owner, id.NewGroupID(), models.UpdateGroupInput{})
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("non-owner with an empty update is forbidden", func() {
		_, err := s.service.UpdateGroup(s.ctx, s.outsider, g.ID, models.UpdateGroupInput{})
		s.assertCode(err, dErrors.CodeForbidden)
	})

	s.Run("owner with no fields gets a no-op error", func() {
		_, err := s.service.UpdateGroup(s.ctx, s.owner, g.ID, models.UpdateGroupInput{})
		s.assertCode(err, dErrors.CodeNoOp)
	})

	s.Run("non-owner is forbidden before validation", func() {
		blank := ""
		_, err := s.service.UpdateGroup(s.ctx, s.outsider, g.ID, models.UpdateGroupInput{Name: &blank})
		s.assertCode(err, dErrors.CodeForbidden)
	})

	s.Run("owner with invalid value", func() {
		blank := "  "
		_, err := s.service.UpdateGroup(s.ctx, s.owner, g.ID, models.UpdateGroupInput{Name: &blank})
		s.assertCode(err, dErrors.CodeValidation)
	})

	s.Run("owner updates name and refreshes updated_at", func() {
		updated, err := s.service.UpdateGroup(s.at(time.Hour), s.owner, g.ID, models.UpdateGroupInput{Name: &name})
		s.Require().NoError(err)
		s.Equal("Renamed", updated.Name)
		s.Equal("about Original", updated.Description)
		s.Equal(s.now.Add(time.Hour), updated.UpdatedAt)
		s.Equal(s.now, updated.CreatedAt)
		s.Equal(s.owner, updated.OwnerID)
	})
}

// Scenario D: the owner cannot remove themself and must delete the group,
// which cascades to every dependent row.
func (s *GroupServiceSuite) TestOwnerRemovalAndDelete() {
	g := s.createGroup("Doomed")
	s.addMember(g, s.member)
	_, err := s.service.AddContent(s.ctx, s.owner, g.ID, 550)
	s.Require().NoError(err)
	pending, err := s.service.RequestToJoin(s.ctx, s.outsider, g.ID)
	s.Require().NoError(err)

	err = s.service.RemoveMember(s.ctx, s.owner, g.ID, s.owner)
	s.assertCode(err, dErrors.CodeForbidden)
	s.assertSingleOwnerRow(g.ID, s.owner)

	err = s.service.DeleteGroup(s.ctx, s.member, g.ID)
	s.assertCode(err, dErrors.CodeForbidden)

	s.Require().NoError(s.service.DeleteGroup(s.ctx, s.owner, g.ID))

	_, err = s.service.GetGroupDetails(s.ctx, s.owner, g.ID)
	s.assertCode(err, dErrors.CodeNotFound)
	members, err := s.store.ListMembers(context.Background(), g.ID)
	s.Require().NoError(err)
	s.Empty(members)
	_, err = s.store.FindJoinRequest(context.Background(), pending.ID)
	s.Error(err)
	content, err := s.store.ListContent(context.Background(), g.ID)
	s.Require().NoError(err)
	s.Empty(content)

	err = s.service.DeleteGroup(s.ctx, s.owner, g.ID)
	s.assertCode(err, dErrors.CodeNotFound)
}

func (s *GroupServiceSuite) TestRemoveMember() {
	g := s.createGroup("Members")
	s.addMember(g, s.member)

	s.Run("non-owner is forbidden", func() {
		err := s.service.RemoveMember(s.ctx, s.member, g.ID, s.member)
		s.assertCode(err, dErrors.CodeForbidden)
	})

	s.Run("target not a member", func() {
		err := s.service.RemoveMember(s.ctx, s.owner, g.ID, s.outsider)
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("owner removes member", func() {
		s.Require().NoError(s.service.RemoveMember(s.ctx, s.owner, g.ID, s.member))
		details, err := s.service.GetGroupDetails(s.ctx, s.member, g.ID)
		s.Require().NoError(err)
		s.False(details.IsMember)
		s.Equal(1, details.MemberCount)
	})
}

func (s *GroupServiceSuite) TestLeaveGroup() {
	g := s.createGroup("Leavers")
	s.addMember(g, s.member)

	s.Run("owner cannot leave", func() {
		err := s.service.LeaveGroup(s.ctx, s.owner, g.ID)
		s.assertCode(err, dErrors.CodeForbidden)
		s.assertSingleOwnerRow(g.ID, s.owner)
	})

	s.Run("non-member", func() {
		err := s.service.LeaveGroup(s.ctx, s.outsider, g.ID)
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("missing group", func() {
		err := s.service.LeaveGroup(s.ctx, s.member, id.NewGroupID())
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("member leaves and may request again", func() {
		s.Require().NoError(s.service.LeaveGroup(s.ctx, s.member, g.ID))
		r, err := s.service.RequestToJoin(s.ctx, s.member, g.ID)
		s.Require().NoError(err)
		s.Equal(models.JoinRequestPending, r.Status)
	})
}

// Scenario B: a second request while one is pending conflicts.
func (s *GroupServiceSuite) TestRequestToJoin() {
	g := s.createGroup("Joinable")

	r, err := s.service.RequestToJoin(s.ctx, s.member, g.ID)
	s.Require().NoError(err)
	s.Equal(models.JoinRequestPending, r.Status)
	s.Equal(s.now, r.RequestedAt)
	s.Nil(r.RespondedAt)

	_, err = s.service.RequestToJoin(s.ctx, s.member, g.ID)
	s.assertCode(err, dErrors.CodeConflict)

	_, err = s.service.RequestToJoin(s.ctx, s.owner, g.ID)
	s.assertCode(err, dErrors.CodeConflict)

	_, err = s.service.RequestToJoin(s.ctx, s.member, id.NewGroupID())
	s.assertCode(err, dErrors.CodeNotFound)

	s.Equal(float64(1), promtestutil.ToFloat64(s.metrics.JoinRequests.WithLabelValues("requested")))
}

// Scenario C: approval makes the requester a member.
func (s *GroupServiceSuite) TestApproveRequest() {
	g := s.createGroup("Approvals")
	r, err := s.service.RequestToJoin(s.ctx, s.member, g.ID)
	s.Require().NoError(err)

	s.Run("non-owner is forbidden", func() {
		_, err := s.service.ApproveRequest(s.ctx, s.member, g.ID, r.ID)
		s.assertCode(err, dErrors.CodeForbidden)
	})

	s.Run("request from another group is not found", func() {
		other := s.createGroup("Other")
		_, err := s.service.ApproveRequest(s.ctx, s.owner, other.ID, r.ID)
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("unknown request", func() {
		_, err := s.service.ApproveRequest(s.ctx, s.owner, g.ID, id.NewJoinRequestID())
		s.assertCode(err, dErrors.CodeNotFound)
	})

	s.Run("approval adds membership", func() {
		approved, err := s.service.ApproveRequest(s.at(time.Minute), s.owner, g.ID, r.ID)
		s.Require().NoError(err)
		s.Equal(models.JoinRequestApproved, approved.Status)
		s.Require().NotNil(approved.RespondedAt)
		s.Equal(s.now.Add(time.Minute), *approved.RespondedAt)

		page, err := s.service.ListGroups(s.ctx, s.member, models.Page{Page: 1, Limit: 10})
		s.Require().NoError(err)
		for _, summary := range page.Groups {
			if summary.ID == g.ID {
				s.Equal(2, summary.MemberCount)
				s.True(summary.IsMember)
				s.False(summary.IsOwner)
			}
		}
	})

	s.Run("terminal states absorb", func() {
		_, err := s.service.ApproveRequest(s.ctx, s.owner, g.ID, r.ID)
		s.assertCode(err, dErrors.CodeInvalidState)
		_, err = s.service.RejectRequest(s.ctx, s.owner, g.ID, r.ID)
		s.assertCode(err, dErrors.CodeInvalidState)
	})

	s.Run("approval tolerates an existing membership", func() {
		late, err := s.service.RequestToJoin(s.ctx, s.outsider, g.ID)
		s.Require().NoError(err)
		s.Require().NoError(s.store.AddMember(context.Background(), models.NewMemberMembership(g.ID, s.outsider, s.now)))

		_, err = s.service.ApproveRequest(s.ctx, s.owner, g.ID, late.ID)
		s.Require().NoError(err)
	})
}

func (s *GroupServiceSuite) TestRejectRequest() {
	g := s.createGroup("Rejections")
	r, err := s.service.RequestToJoin(s.ctx, s.member, g.ID)
	s.Require().NoError(err)

	rejected, err := s.service.RejectRequest(s.ctx, s.owner, g.ID, r.ID)
	s.Require().NoError(err)
	s.Equal(models.JoinRequestRejected, rejected.Status)
	s.NotNil(rejected.RespondedAt)

	_, err = s.store.FindMember(context.Background(), g.ID, s.member)
	s.Error(err, "rejection has no membership side effect")

	_, err = s.service.ApproveRequest(s.ctx, s.owner, g.ID, r.ID)
	s.assertCode(err, dErrors.CodeInvalidState)

	again, err := s.service.RequestToJoin(s.ctx, s.member, g.ID)
	s.Require().NoError(err, "a rejected user may ask again")
	s.NotEqual(r.ID, again.ID)
}

func (s *GroupServiceSuite) TestPendingLists() {
	first := s.createGroup("First")
	second := s.createGroup("Second")
	a, b := id.NewUserID(), id.NewUserID()

	r1, err := s.service.RequestToJoin(s.at(time.Minute), a, first.ID)
	s.Require().NoError(err)
	r2, err := s.service.RequestToJoin(s.at(2*time.Minute), b, first.ID)
	s.Require().NoError(err)
	r3, err := s.service.RequestToJoin(s.at(3*time.Minute), a, second.ID)
	s.Require().NoError(err)

	s.Run("group list is oldest first and owner only", func() {
		list, err := s.service.ListPendingForGroup(s.ctx, s.owner, first.ID)
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal(r1.ID, list[0].ID)
		s.Equal(r2.ID, list[1].ID)

		_, err = s.service.ListPendingForGroup(s.ctx, a, first.ID)
		s.assertCode(err, dErrors.CodeForbidden)
	})

	s.Run("owner feed is newest first with group names", func() {
		feed, err := s.service.ListPendingForOwner(s.ctx, s.owner)
		s.Require().NoError(err)
		s.Require().Len(feed, 3)
		s.Equal(r3.ID, feed[0].ID)
		s.Equal("Second", feed[0].GroupName)
		s.Equal(r1.ID, feed[2].ID)
	})

	s.Run("resolved requests leave the feed", func() {
		_, err := s.service.RejectRequest(s.ctx, s.owner, first.ID, r2.ID)
		s.Require().NoError(err)
		feed, err := s.service.ListPendingForOwner(s.ctx, s.owner)
		s.Require().NoError(err)
		s.Len(feed, 2)
	})

	s.Run("non-owners see an empty feed", func() {
		feed, err := s.service.ListPendingForOwner(s.ctx, a)
		s.Require().NoError(err)
		s.Empty(feed)
	})
}

func (s *GroupServiceSuite) TestContent() {
	g := s.createGroup("Films")
	s.addMember(g, s.member)

	s.Run("owner only", func() {
		_, err := s.service.AddContent(s.ctx, s.member, g.ID, 10)
		s.assertCode(err, dErrors.CodeForbidden)
	})

	s.Run("movie id must be positive", func() {
		_, err := s.service.AddContent(s.ctx, s.owner, g.ID, 0)
		s.assertCode(err, dErrors.CodeValidation)
	})

	s.Run("duplicate conflicts", func() {
		_, err := s.service.AddContent(s.at(time.Minute), s.owner, g.ID, 10)
		s.Require().NoError(err)
		_, err = s.service.AddContent(s.ctx, s.owner, g.ID, 10)
		s.assertCode(err, dErrors.CodeConflict)
	})

	s.Run("first movie is the earliest added", func() {
		_, err := s.service.AddContent(s.at(2*time.Minute), s.owner, g.ID, 5)
		s.Require().NoError(err)
		details, err := s.service.GetGroupDetails(s.ctx, s.member, g.ID)
		s.Require().NoError(err)
		s.Require().NotNil(details.FirstMovieID)
		s.Equal(id.MovieID(10), *details.FirstMovieID)
		s.Equal(2, details.MovieCount)
	})

	s.Run("remove", func() {
		s.Require().NoError(s.service.RemoveContent(s.ctx, s.owner, g.ID, 10))
		err := s.service.RemoveContent(s.ctx, s.owner, g.ID, 10)
		s.assertCode(err, dErrors.CodeNotFound)
		err = s.service.RemoveContent(s.ctx, s.member, g.ID, 5)
		s.assertCode(err, dErrors.CodeForbidden)
	})
}

// Scenario E: content is only visible to members.
func (s *GroupServiceSuite) TestContentVisibility() {
	g := s.createGroup("Private Reels")
	s.addMember(g, s.member)
	_, err := s.service.AddContent(s.ctx, s.owner, g.ID, 603)
	s.Require().NoError(err)

	outsiderView, err := s.service.GetGroupDetails(s.ctx, s.outsider, g.ID)
	s.Require().NoError(err)
	s.Nil(outsiderView.Content)
	s.False(outsiderView.IsMember)
	s.Len(outsiderView.Members, 2, "members are always listed")

	anonView, err := s.service.GetGroupDetails(s.ctx, id.UserID{}, g.ID)
	s.Require().NoError(err)
	s.Nil(anonView.Content)
	s.False(anonView.IsMember)
	s.False(anonView.IsOwner)

	memberView, err := s.service.GetGroupDetails(s.ctx, s.member, g.ID)
	s.Require().NoError(err)
	s.True(memberView.IsMember)
	s.False(memberView.IsOwner)
	s.Require().Len(memberView.Content, 1)
	s.Equal(id.MovieID(603), memberView.Content[0].MovieID)

	empty := s.createGroup("Empty")
	ownerView, err := s.service.GetGroupDetails(s.ctx, s.owner, empty.ID)
	s.Require().NoError(err)
	s.NotNil(ownerView.Content)
	s.Empty(ownerView.Content)
	s.Nil(ownerView.FirstMovieID)
}

func (s *GroupServiceSuite) TestListGroups() {
	for i := range 5 {
		_, err := s.service.CreateGroup(s.at(time.Duration(i)*time.Minute), s.owner, models.CreateGroupInput{Name: "G" + string(rune('0'+i))})
		s.Require().NoError(err)
	}

	s.Run("pages newest first", func() {
		page, err := s.service.ListGroups(s.ctx, id.UserID{}, models.Page{Page: 1, Limit: 2})
		s.Require().NoError(err)
		s.Equal(5, page.Total)
		s.Require().Len(page.Groups, 2)
		s.Equal("G4", page.Groups[0].Name)
		s.False(page.Groups[0].IsMember)

		last, err := s.service.ListGroups(s.ctx, id.UserID{}, models.Page{Page: 3, Limit: 2})
		s.Require().NoError(err)
		s.Require().Len(last.Groups, 1)
		s.Equal("G0", last.Groups[0].Name)
	})

	s.Run("page far past the end is empty", func() {
		page, err := s.service.ListGroups(s.ctx, id.UserID{}, models.Page{Page: math.MaxInt, Limit: 20})
		s.Require().NoError(err)
		s.Equal(5, page.Total)
		s.Equal(models.MaxPage, page.Page)
		s.Empty(page.Groups)
	})

	s.Run("owner flags", func() {
		page, err := s.service.ListGroups(s.ctx, s.owner, models.Page{})
		s.Require().NoError(err)
		s.Equal(1, page.Page)
		s.Equal(20, page.Limit)
		for _, g := range page.Groups {
			s.True(g.IsOwner)
			s.True(g.IsMember)
			s.Equal(1, g.MemberCount)
			s.Nil(g.FirstMovieID)
		}
	})

	s.Run("page past the end is empty", func() {
		page, err := s.service.ListGroups(s.ctx, s.owner, models.Page{Page: 9, Limit: 10})
		s.Require().NoError(err)
		s.Empty(page.Groups)
		s.Equal(5, page.Total)
	})
}

func (s *GroupServiceSuite) TestTimeoutBeforeTransaction() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.service.CreateGroup(ctx, s.owner, models.CreateGroupInput{Name: "late"})
	s.assertCode(err, dErrors.CodeTimeout)
}
