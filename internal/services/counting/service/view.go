package service

import (
	"stockcount/internal/core/feedback"
	"stockcount/internal/core/gate"
	"stockcount/internal/core/manifest"
	"stockcount/internal/services/counting/domain"
)

func (s *Svc) view(l *live) domain.SessionView {
	m := l.sess.Manifest()
	counted, total := m.Progress()
	st := l.sess.Stats()

	v := domain.SessionView{
		ID:       l.id,
		Kind:     l.kind,
		OrderID:  l.orderID,
		State:    domain.StateOpen,
		Gate:     gateView(l.sess.Gate()),
		Lines:    lineViews(l, m),
		Counted:  counted,
		Total:    total,
		Complete: m.Complete(),
		Stats: domain.StatsView{
			Submitted: st.Submitted,
			Dropped:   st.Dropped,
			Discarded: st.Discarded,
			Accepted:  st.Accepted,
			Rejected:  st.Rejected,
		},
		OpenedAt: l.openedAt,
		SeenAt:   l.seenAt(),
	}
	if l.sess.Closed() {
		v.State = domain.StateClosed
	}
	if b, ok := l.sess.LastScanned(); ok {
		bv := bannerView(b)
		v.Banner = &bv
	}
	return v
}

func lineViews(l *live, m manifest.Manifest) []domain.LineView {
	lines := m.Lines()
	out := make([]domain.LineView, 0, len(lines))
	for _, line := range lines {
		out = append(out, lineView(l, line))
	}
	return out
}

func lineView(l *live, line manifest.Line) domain.LineView {
	return domain.LineView{
		ItemID:      line.ItemID,
		DisplayName: line.DisplayName,
		Expected:    line.ExpectedQuantity,
		Actual:      line.ActualQuantity,
		Status:      string(line.Status()),
		DetailID:    l.detail(line.ItemID),
	}
}

func bannerView(b feedback.Banner) domain.BannerView {
	return domain.BannerView{
		ItemID:      b.ItemID,
		NewActual:   b.NewActual,
		Expected:    b.Expected,
		DisplayName: b.DisplayName,
	}
}

func gateView(g gate.Snapshot) domain.GateView {
	return domain.GateView{State: g.State.String(), Open: g.IsOpen, InFlight: g.InFlight}
}
