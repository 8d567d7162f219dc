package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"cineclub/internal/group/models"
	id "cineclub/pkg/domain"
	"cineclub/pkg/platform/sentinel"
)

// InMemory keeps groups and their dependents in maps guarded by one lock, so a
// group delete removes members, requests and content in the same critical
// section.
type InMemory struct {
	mu       sync.RWMutex
	groups   map[id.GroupID]*models.Group
	members  map[id.GroupID]map[id.UserID]*models.Membership
	requests map[id.JoinRequestID]*models.JoinRequest
	content  map[id.GroupID]map[id.MovieID]*models.GroupContent
}

func NewInMemory() *InMemory {
	return &InMemory{
		groups:   make(map[id.GroupID]*models.Group),
		members:  make(map[id.GroupID]map[id.UserID]*models.Membership),
		requests: make(map[id.JoinRequestID]*models.JoinRequest),
		content:  make(map[id.GroupID]map[id.MovieID]*models.GroupContent),
	}
}

// Groups

func (s *InMemory) CreateGroup(_ context.Context, g *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[g.ID]; ok {
		return fmt.Errorf("group %s: %w", g.ID, sentinel.ErrConflict)
	}
	cp := *g
	s.groups[g.ID] = &cp
	return nil
}

func (s *InMemory) FindGroup(_ context.Context, groupID id.GroupID) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[groupID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *InMemory) UpdateGroup(_ context.Context, g *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.groups[g.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	existing.Name = g.Name
	existing.Description = g.Description
	existing.UpdatedAt = g.UpdatedAt
	return nil
}

func (s *InMemory) DeleteGroup(_ context.Context, groupID id.GroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[groupID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.groups, groupID)
	delete(s.members, groupID)
	delete(s.content, groupID)
	for rid, r := range s.requests {
		if r.GroupID == groupID {
			delete(s.requests, rid)
		}
	}
	return nil
}

// ListGroups returns groups newest first.
func (s *InMemory) ListGroups(_ context.Context, offset, limit int) ([]*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		cp := *g
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	if offset < 0 || offset >= len(all) {
		return []*models.Group{}, nil
	}
	end := offset + min(limit, len(all)-offset)
	return all[offset:end], nil
}

func (s *InMemory) CountGroups(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups), nil
}

// Memberships

func (s *InMemory) AddMember(_ context.Context, m *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[m.GroupID]; !ok {
		return sentinel.ErrNotFound
	}
	byUser := s.members[m.GroupID]
	if byUser == nil {
		byUser = make(map[id.UserID]*models.Membership)
		s.members[m.GroupID] = byUser
	}
	if _, ok := byUser[m.UserID]; ok {
		return sentinel.ErrConflict
	}
	if m.IsOwner() {
		for _, existing := range byUser {
			if existing.IsOwner() {
				return sentinel.ErrConflict
			}
		}
	}
	cp := *m
	byUser[m.UserID] = &cp
	return nil
}

// AddMemberIfAbsent inserts m unless the pair already exists and reports
// whether a row was written.
func (s *InMemory) AddMemberIfAbsent(ctx context.Context, m *models.Membership) (bool, error) {
	err := s.AddMember(ctx, m)
	if errors.Is(err, sentinel.ErrConflict) {
		return false, nil
	}
	return err == nil, err
}

func (s *InMemory) FindMember(_ context.Context, groupID id.GroupID, userID id.UserID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[groupID][userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// ListMembers returns members in join order.
func (s *InMemory) ListMembers(_ context.Context, groupID id.GroupID) ([]*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Membership, 0, len(s.members[groupID]))
	for _, m := range s.members[groupID] {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].UserID.String() < out[j].UserID.String()
	})
	return out, nil
}

// RemoveMember deletes a member-role row. Owner rows are never deleted here.
func (s *InMemory) RemoveMember(_ context.Context, groupID id.GroupID, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[groupID][userID]
	if !ok || m.IsOwner() {
		return sentinel.ErrNotFound
	}
	delete(s.members[groupID], userID)
	return nil
}

func (s *InMemory) GroupStats(_ context.Context, groupIDs []id.GroupID) (map[id.GroupID]models.GroupStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.GroupID]models.GroupStats, len(groupIDs))
	for _, gid := range groupIDs {
		if _, ok := s.groups[gid]; !ok {
			continue
		}
		stats := models.GroupStats{
			MemberCount: len(s.members[gid]),
			MovieCount:  len(s.content[gid]),
		}
		var first *models.GroupContent
		for _, c := range s.content[gid] {
			if first == nil || c.AddedAt.Before(first.AddedAt) ||
				(c.AddedAt.Equal(first.AddedAt) && c.MovieID < first.MovieID) {
				first = c
			}
		}
		if first != nil {
			movieID := first.MovieID
			stats.FirstMovieID = &movieID
		}
		out[gid] = stats
	}
	return out, nil
}

func (s *InMemory) ViewerRoles(_ context.Context, userID id.UserID, groupIDs []id.GroupID) (map[id.GroupID]models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.GroupID]models.Role)
	for _, gid := range groupIDs {
		if m, ok := s.members[gid][userID]; ok {
			out[gid] = m.Role
		}
	}
	return out, nil
}

// Join requests

// CreateJoinRequest rejects a second pending request for the same pair.
func (s *InMemory) CreateJoinRequest(_ context.Context, r *models.JoinRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[r.GroupID]; !ok {
		return sentinel.ErrNotFound
	}
	for _, existing := range s.requests {
		if existing.GroupID == r.GroupID && existing.UserID == r.UserID && existing.IsPending() {
			return sentinel.ErrConflict
		}
	}
	cp := *r
	s.requests[r.ID] = &cp
	return nil
}

func (s *InMemory) FindJoinRequest(_ context.Context, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyRequest(r), nil
}

func (s *InMemory) FindPendingJoinRequest(_ context.Context, groupID id.GroupID, userID id.UserID) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.GroupID == groupID && r.UserID == userID && r.IsPending() {
			return copyRequest(r), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// ResolveJoinRequest persists a terminal status only if the stored row is
// still pending.
func (s *InMemory) ResolveJoinRequest(_ context.Context, r *models.JoinRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.requests[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if !existing.IsPending() {
		return sentinel.ErrInvalidState
	}
	existing.Status = r.Status
	if r.RespondedAt != nil {
		at := *r.RespondedAt
		existing.RespondedAt = &at
	}
	return nil
}

// ListPendingByGroup returns pending requests oldest first.
func (s *InMemory) ListPendingByGroup(_ context.Context, groupID id.GroupID) ([]*models.PendingJoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.PendingJoinRequest{}
	for _, r := range s.requests {
		if r.GroupID == groupID && r.IsPending() {
			out = append(out, &models.PendingJoinRequest{JoinRequest: *copyRequest(r), GroupName: s.groups[groupID].Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return requestedBefore(out[i], out[j]) })
	return out, nil
}

// ListPendingByOwner returns pending requests across every group ownerID owns,
// newest first.
func (s *InMemory) ListPendingByOwner(_ context.Context, ownerID id.UserID) ([]*models.PendingJoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.PendingJoinRequest{}
	for _, r := range s.requests {
		g, ok := s.groups[r.GroupID]
		if !ok || g.OwnerID != ownerID || !r.IsPending() {
			continue
		}
		out = append(out, &models.PendingJoinRequest{JoinRequest: *copyRequest(r), GroupName: g.Name})
	}
	sort.Slice(out, func(i, j int) bool { return requestedBefore(out[j], out[i]) })
	return out, nil
}

func requestedBefore(a, b *models.PendingJoinRequest) bool {
	if !a.RequestedAt.Equal(b.RequestedAt) {
		return a.RequestedAt.Before(b.RequestedAt)
	}
	return a.ID.String() < b.ID.String()
}

func copyRequest(r *models.JoinRequest) *models.JoinRequest {
	cp := *r
	if r.RespondedAt != nil {
		at := *r.RespondedAt
		cp.RespondedAt = &at
	}
	return &cp
}

// Content

func (s *InMemory) AddContent(_ context.Context, c *models.GroupContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[c.GroupID]; !ok {
		return sentinel.ErrNotFound
	}
	byMovie := s.content[c.GroupID]
	if byMovie == nil {
		byMovie = make(map[id.MovieID]*models.GroupContent)
		s.content[c.GroupID] = byMovie
	}
	if _, ok := byMovie[c.MovieID]; ok {
		return sentinel.ErrConflict
	}
	cp := *c
	byMovie[c.MovieID] = &cp
	return nil
}

func (s *InMemory) RemoveContent(_ context.Context, groupID id.GroupID, movieID id.MovieID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.content[groupID][movieID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.content[groupID], movieID)
	return nil
}

// ListContent returns content in the order it was added.
func (s *InMemory) ListContent(_ context.Context, groupID id.GroupID) ([]*models.GroupContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.GroupContent, 0, len(s.content[groupID]))
	for _, c := range s.content[groupID] {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AddedAt.Before(out[j].AddedAt)
		}
		return out[i].MovieID < out[j].MovieID
	})
	return out, nil
}
