package entity

// ListingStatus gates public visibility of businesses, events and marketplace listings.
type ListingStatus string

const (
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusActive    ListingStatus = "active"
	ListingStatusRejected  ListingStatus = "rejected"
	ListingStatusSuspended ListingStatus = "suspended"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusExpired   ListingStatus = "expired"
)

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
	ReviewStatusInReview ReviewStatus = "in_review"
)

var (
	businessStatuses    = []ListingStatus{ListingStatusPending, ListingStatusActive, ListingStatusRejected, ListingStatusSuspended}
	eventStatuses       = []ListingStatus{ListingStatusPending, ListingStatusActive, ListingStatusRejected, ListingStatusSuspended, ListingStatusExpired}
	marketplaceStatuses = []ListingStatus{ListingStatusPending, ListingStatusActive, ListingStatusSold, ListingStatusRejected, ListingStatusExpired}
	reviewStatuses      = []ReviewStatus{ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected, ReviewStatusInReview}
)

// ValidBusinessStatus reports whether s is allowed on a business row.
func ValidBusinessStatus(s ListingStatus) bool { return containsStatus(businessStatuses, s) }

// ValidEventStatus reports whether s is allowed on an event row.
func ValidEventStatus(s ListingStatus) bool { return containsStatus(eventStatuses, s) }

// ValidMarketplaceStatus reports whether s is allowed on a marketplace listing.
func ValidMarketplaceStatus(s ListingStatus) bool { return containsStatus(marketplaceStatuses, s) }

// ValidReviewStatus reports whether s is a known review moderation state.
func ValidReviewStatus(s ReviewStatus) bool {
	for _, candidate := range reviewStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsStatus(set []ListingStatus, s ListingStatus) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}
