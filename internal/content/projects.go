package content

import "github.com/Zachkp/ee-portfolio/internal/models"

var projects = []models.Project{
	{
		Title:       "UWB Indoor Localization",
		Description: "DW3000 anchors + tags, ToF/TDoA, live 2D/3D map; < 20 cm median error.",
		Code:        "https://github.com/you/uwb-rtls",
		Docs:        "/docs/uwb-rtls.html",
		Video:       "/media/uwb-demo.mp4",
		Tags:        []string{"RF", "Embedded", "Fusion"},
	},
	{
		Title:       "SDR OFDM Link",
		Description: "GNU Radio baseband + embedded front-end; adaptive MCS with BER plots.",
		Code:        "https://github.com/you/sdr-link",
		Docs:        "/docs/sdr-link.html",
		Tags:        []string{"DSP", "Comms"},
	},
	{
		Title:       "Digital Power / FOC Drive",
		Description: "C2000 closed-loop control; efficiency & transient KPIs with PyVISA sweeps.",
		Code:        "https://github.com/you/digital-power",
		Tags:        []string{"Power", "Control"},
	},
	{
		Title:       "FPGA DDR3 Pipeline",
		Description: "MIG DDR3 + AXI stream; throughput/latency report @ 1080p60.",
		Code:        "https://github.com/you/fpga-ddr-pipe",
		Tags:        []string{"FPGA", "High-Speed"},
	},
	{
		Title:       "Edge-AI Vision Sorter",
		Description: "Jetson + OAK-D; part/defect detection → actuator; end-to-end latency logged.",
		Code:        "https://github.com/you/edge-vision-sorter",
		Tags:        []string{"AI/CV", "Robotics"},
	},
	{
		Title:       "Automated Test Bench",
		Description: "SCPI + PyVISA orchestration; repeatable sweeps with plots & CSV artifacts.",
		Code:        "https://github.com/you/auto-test-bench",
		Tags:        []string{"Test", "CI"},
	},
	{
		Title:       "High-Speed Imaging FPGA",
		Description: "Modular hardware vision engine: edges/keys/flow on-chip, DDR buffering, 10 GbE/PCIe output.",
		Docs:        DetailPath,
		Tags:        []string{"FPGA", "Vision", "High-Speed"},
		Image:       "/images/hs-imaging/cover.png",
		ImageAlt:    "Cyberpunk cover of High-Speed Imaging FPGA pipeline",
	},
}

// Projects returns the project cards in display order. The result is a deep copy.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		p.Tags = clone(p.Tags)
		out[i] = p
	}
	return out
}
