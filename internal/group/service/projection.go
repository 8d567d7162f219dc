package service

import (
	"context"
	"time"

	"cineclub/internal/group/models"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

// ListGroups returns one page of groups, newest first, decorated with counts
// and the viewer's standing. viewer may be the nil id for anonymous callers.
// Stats and viewer roles are fetched with one query each for the whole page.
func (s *Service) ListGroups(ctx context.Context, viewer id.UserID, page models.Page) (*models.GroupPage, error) {
	defer s.observe("list_groups", time.Now())
	page.Normalize()

	total, err := s.groups.CountGroups(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count groups")
	}
	groups, err := s.groups.ListGroups(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list groups")
	}

	ids := make([]id.GroupID, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	stats, err := s.members.GroupStats(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load group stats")
	}
	roles := map[id.GroupID]models.Role{}
	if !viewer.IsNil() && len(ids) > 0 {
		roles, err = s.members.ViewerRoles(ctx, viewer, ids)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load memberships")
		}
	}

	summaries := make([]models.GroupSummary, len(groups))
	for i, g := range groups {
		st := stats[g.ID]
		role, isMember := roles[g.ID]
		summaries[i] = models.GroupSummary{
			Group:        *g,
			MemberCount:  st.MemberCount,
			MovieCount:   st.MovieCount,
			FirstMovieID: st.FirstMovieID,
			IsMember:     isMember,
			IsOwner:      isMember && role == models.RoleOwner,
		}
	}

	return &models.GroupPage{Groups: summaries, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

// GetGroupDetails returns the group with its members. Content is only
// included when viewer is a current member.
func (s *Service) GetGroupDetails(ctx context.Context, viewer id.UserID, groupID id.GroupID) (*models.GroupDetails, error) {
	defer s.observe("get_group_details", time.Now())
	g, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.members.ListMembers(ctx, groupID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list members")
	}
	stats, err := s.members.GroupStats(ctx, []id.GroupID{groupID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load group stats")
	}

	memberIDs := make([]id.UserID, len(memberships))
	for i, m := range memberships {
		memberIDs[i] = m.UserID
	}
	names := s.usernames(ctx, memberIDs)

	details := &models.GroupDetails{
		Group:   *g,
		Members: make([]models.MemberView, len(memberships)),
	}
	for i, m := range memberships {
		details.Members[i] = models.MemberView{
			UserID:   m.UserID,
			Username: names[m.UserID],
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
		if !viewer.IsNil() && m.UserID == viewer {
			details.IsMember = true
			details.IsOwner = m.IsOwner()
		}
	}

	st := stats[groupID]
	details.MemberCount = st.MemberCount
	details.MovieCount = st.MovieCount
	details.FirstMovieID = st.FirstMovieID

	if details.IsMember {
		content, err := s.content.ListContent(ctx, groupID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list group movies")
		}
		details.Content = make([]models.GroupContent, len(content))
		for i, c := range content {
			details.Content[i] = *c
		}
	}
	return details, nil
}
