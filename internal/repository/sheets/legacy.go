package sheets

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"camclub-backend/internal/domain"
)

// The club spreadsheet predates this service and its columns are the wire
// format: Korean headers, a composite "[body] + [lens]" descriptor and a
// pipe-delimited history blob. All of it is translated here; nothing past
// this package sees the string-embedded forms.

const (
	dateLayout       = "2006-01-02"
	timestampLayout  = "2006-01-02 15:04"
	accessoryPrefix  = "액세서리: "
	submittedPrefix  = "신청일: "
	noAccessoryLabel = "없음"
)

var statusFromLegacy = map[string]domain.RentalStatus{
	"대기":   domain.RentalStatusPending,
	"확정":   domain.RentalStatusConfirmed,
	"대여중":  domain.RentalStatusInProgress,
	"취소":   domain.RentalStatusRejected, // the old UI wrote rejections as 취소
	"반납완료": domain.RentalStatusReturned,
}

var statusToLegacy = map[domain.RentalStatus]string{
	domain.RentalStatusPending:    "대기",
	domain.RentalStatusConfirmed:  "확정",
	domain.RentalStatusInProgress: "대여중",
	domain.RentalStatusRejected:   "취소",
	domain.RentalStatusReturned:   "반납완료",
}

// parseStatus keeps unknown raw values as-is; they count as inactive
// everywhere, so a hand-edited cell degrades that one record only.
func parseStatus(raw string) domain.RentalStatus {
	if s, ok := statusFromLegacy[strings.TrimSpace(raw)]; ok {
		return s
	}
	return domain.RentalStatus(strings.TrimSpace(raw))
}

func formatStatus(s domain.RentalStatus) string {
	if raw, ok := statusToLegacy[s]; ok {
		return raw
	}
	return string(s)
}

var descriptorRe = regexp.MustCompile(`\[([^\]]*)\]\s*\+\s*\[([^\]]*)\]`)

// parseDescriptor splits the composite descriptor into its structured form.
// A cell that never matched the composite pattern is treated as a bare body
// model, which is how the earliest sheet rows were written.
func parseDescriptor(raw string) domain.EquipmentRef {
	m := descriptorRe.FindStringSubmatch(raw)
	if m == nil {
		model := strings.TrimSpace(raw)
		if model == "" || model == domain.NoBodyLabel {
			return domain.EquipmentRef{}
		}
		return domain.EquipmentRef{BodyModel: model}
	}
	ref := domain.EquipmentRef{
		BodyModel: strings.TrimSpace(m[1]),
		LensModel: strings.TrimSpace(m[2]),
	}
	if ref.BodyModel == domain.NoBodyLabel {
		ref.BodyModel = ""
	}
	if ref.LensModel == domain.NoLensLabel {
		ref.LensModel = ""
	}
	return ref
}

func formatDescriptor(ref domain.EquipmentRef) string {
	return ref.String()
}

// parseHistoryBlob extracts accessories and the submission timestamp from
// the "액세서리: SD카드, 가방 | 신청일: 2025-06-01 14:30" blob.
func parseHistoryBlob(raw string) (accessories []string, submittedAt time.Time) {
	for _, seg := range strings.Split(raw, "|") {
		seg = strings.TrimSpace(seg)
		switch {
		case strings.HasPrefix(seg, accessoryPrefix):
			list := strings.TrimPrefix(seg, accessoryPrefix)
			if list == noAccessoryLabel || list == "" {
				continue
			}
			for _, a := range strings.Split(list, ",") {
				if a = strings.TrimSpace(a); a != "" {
					accessories = append(accessories, a)
				}
			}
		case strings.HasPrefix(seg, submittedPrefix):
			submittedAt, _ = time.Parse(timestampLayout, strings.TrimPrefix(seg, submittedPrefix))
		}
	}
	return accessories, submittedAt
}

func formatHistoryBlob(accessories []string, submittedAt time.Time) string {
	list := noAccessoryLabel
	if len(accessories) > 0 {
		list = strings.Join(accessories, ", ")
	}
	return fmt.Sprintf("%s%s | %s%s", accessoryPrefix, list, submittedPrefix, submittedAt.Format(timestampLayout))
}

var dateLayouts = []string{dateLayout, timestampLayout, "2006-01-02 15:04:05", "2006.01.02", "2006/01/02"}

// parseDate returns the zero time on malformed input; date-based scans skip
// such records instead of aborting.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
