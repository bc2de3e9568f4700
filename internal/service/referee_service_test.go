package service_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/service"
)

type fakeRefereeSource struct {
	rows []models.RefereeGameRow
}

func (f *fakeRefereeSource) GetGameRows() ([]models.RefereeGameRow, error) {
	return f.rows, nil
}

func TestRefereeService_SeasonAggregates(t *testing.T) {
	Convey("Given officiating records for two referees", t, func() {
		svc := service.NewRefereeService(&fakeRefereeSource{rows: []models.RefereeGameRow{
			{GameID: 1, FullName: "Ada Novak", Role: "referee", FoulsCalled: 20},
			{GameID: 2, FullName: "Ada Novak", Role: "referee", FoulsCalled: 30},
			{GameID: 1, FullName: "Jan Dvorak", Role: "umpire", FoulsCalled: 18},
		}})

		Convey("When season aggregates are computed", func() {
			aggregates, err := svc.GetSeasonAggregates()
			So(err, ShouldBeNil)

			Convey("Then fouls average per game and counts group by full name", func() {
				So(len(aggregates), ShouldEqual, 2)
				So(aggregates[0].FullName, ShouldEqual, "Ada Novak")
				So(aggregates[0].AvgFouls, ShouldEqual, 25.0)
				So(aggregates[0].Games, ShouldEqual, 2)
				So(aggregates[1].FullName, ShouldEqual, "Jan Dvorak")
				So(aggregates[1].AvgFouls, ShouldEqual, 18.0)
				So(aggregates[1].Games, ShouldEqual, 1)
			})
		})
	})
}

func TestRefereeService_EmptyRowSet(t *testing.T) {
	Convey("Given no officiating records", t, func() {
		svc := service.NewRefereeService(&fakeRefereeSource{})

		Convey("When season aggregates are computed", func() {
			aggregates, err := svc.GetSeasonAggregates()

			Convey("Then an empty table comes back without error", func() {
				So(err, ShouldBeNil)
				So(len(aggregates), ShouldEqual, 0)
			})
		})
	})
}
