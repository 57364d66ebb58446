// 包 patta：森林权利法（FRA）地契持有人记录及其 CSV 行布局
package patta

import "strconv"

type Status string

const (
	Approved Status = "APPROVED"
	Pending  Status = "PENDING"
)

// Statuses：按固定顺序列出的全部状态
var Statuses = []Status{Approved, Pending}

// Header：输出文件列顺序
var Header = []string{"id", "holder_name", "status", "land_area_acres", "latitude", "longitude", "village", "district", "state"}

// Record：一条合成的地契持有人记录，生成后不再修改
type Record struct {
	ID            string
	HolderName    string
	Status        Status
	LandAreaAcres float64
	Latitude      float64
	Longitude     float64
	Village       string
	District      string
	State         string

	// Fallback 不落盘，仅用于汇总统计
	Fallback bool
}

// Row：按 Header 顺序输出字段；面积保留 1 位，经纬度保留 4 位
func (r Record) Row() []string {
	return []string{
		r.ID,
		r.HolderName,
		string(r.Status),
		strconv.FormatFloat(r.LandAreaAcres, 'f', 1, 64),
		strconv.FormatFloat(r.Latitude, 'f', 4, 64),
		strconv.FormatFloat(r.Longitude, 'f', 4, 64),
		r.Village,
		r.District,
		r.State,
	}
}
